package workflows

import (
	"errors"

	"github.com/bbazan/vCD-Catalog/common"
)

// Executor define contract for the steps of a workflow
type Executor func() error

func newPipelineExecutor(executors ...Executor) Executor {
	return func() error {
		for _, executor := range executors {
			err := executor()
			if err != nil {
				switch err.(type) {
				case common.Warning:
					log.Warning(err.Error())
					return nil
				default:
					log.Errorf("%v", err)
					log.Debugf("%+v", err)
					return errors.New("")
				}
			}
		}
		return nil
	}
}
