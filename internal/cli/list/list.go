package list

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/v-craft/vct-test-unit/pkg/vct/core"
)

type ListCmd struct {
}

// Prints the qualified name of every registered case in run order.
func (cmd *ListCmd) Run(registry *core.Registry, out io.Writer, log *logrus.Logger) error {
	log.Info("Listing test cases")

	collected := 0
	for _, suite := range registry.Suites() {
		log.Tracef("Listing suite '%s'", suite.Name)
		for _, testCase := range suite.Cases {
			collected++
			fmt.Fprintln(out, core.QualifiedName(suite.Name, testCase.Name))
		}
	}

	log.Infof("Listed %d test cases", collected)
	return nil
}
