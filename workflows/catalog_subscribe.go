package workflows

import (
	"fmt"
	"io"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

// NewSubscribedCatalogCreator create a new workflow for creating a
// catalog subscribed to an externally published feed
func NewSubscribedCatalogCreator(ctx *common.Context, spec *models.CatalogSpec, writer io.Writer) Executor {

	workflow := new(catalogWorkflow)

	return newPipelineExecutor(
		workflow.sessionFinder(ctx.Config.Host, ctx.Sessions),
		workflow.orgFinder(spec.Org, ctx.DirectoryManager),
		workflow.storageProfileResolver(spec.StorageProfile, ctx.DirectoryManager),
		workflow.catalogDocumentBuilder(spec),
		workflow.catalogCreator(ctx.CatalogManager),
		workflow.catalogRefetcher(spec.Name, ctx.DirectoryManager),
		workflow.syncOutcomeReporter(writer),
	)
}

// Report the sync state of the freshly subscribed catalog. A sync error
// fails the workflow; in-progress and unrecognized states are
// informational since the catalog itself was created.
func (workflow *catalogWorkflow) syncOutcomeReporter(writer io.Writer) Executor {
	return func() error {
		outcome := interpretSyncOutcome(workflow.catalog.Tasks)
		workflow.result.Outcome = outcome

		switch outcome.State {
		case common.OutcomeSuccess:
			log.Noticef("Catalog '%s' created and subscribed", workflow.catalog.Name)
			fmt.Fprintf(writer, HeaderValueFormat, Bold("Sync"), "complete")
		case common.OutcomeInProgress:
			log.Noticef("Catalog '%s' created, sync still in progress", workflow.catalog.Name)
			fmt.Fprintf(writer, HeaderValueFormat, Bold("Sync"), "in progress")
		case common.OutcomeError:
			return fmt.Errorf("catalog '%s' sync failed: %s", workflow.catalog.Name, outcome.Detail)
		default:
			log.Warningf("Catalog '%s' created, sync state '%s' not recognized", workflow.catalog.Name, outcome.Detail)
			fmt.Fprintf(writer, HeaderValueFormat, Bold("Sync"), outcome.Detail)
		}
		return nil
	}
}
