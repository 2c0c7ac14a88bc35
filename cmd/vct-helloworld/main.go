package main

import (
	"github.com/v-craft/vct-test-unit/pkg/vct"
	_ "github.com/v-craft/vct-test-unit/suites/helloworld"
)

func main() {
	vct.Main("vct-helloworld")
}
