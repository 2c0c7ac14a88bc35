package main

import (
	"github.com/v-craft/vct-test-unit/pkg/vct"
	_ "github.com/v-craft/vct-test-unit/suites/selftest"
)

func main() {
	vct.Main("vct-selftest")
}
