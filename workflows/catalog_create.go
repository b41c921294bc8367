package workflows

import (
	"fmt"
	"io"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

// NewCatalogCreator create a new workflow for creating a catalog,
// optionally published externally
func NewCatalogCreator(ctx *common.Context, spec *models.CatalogSpec, writer io.Writer) Executor {

	workflow := new(catalogWorkflow)

	return newPipelineExecutor(
		workflow.sessionFinder(ctx.Config.Host, ctx.Sessions),
		workflow.orgFinder(spec.Org, ctx.DirectoryManager),
		workflow.storageProfileResolver(spec.StorageProfile, ctx.DirectoryManager),
		workflow.catalogDocumentBuilder(spec),
		workflow.catalogCreator(ctx.CatalogManager),
		workflow.catalogRefetcher(spec.Name, ctx.DirectoryManager),
		workflow.publishedURLReporter(ctx.Config.Host, spec.Mode == models.ModePublish, writer),
	)
}

// Report the creation result. For published catalogs the composed
// subscription URL is the caller-relevant output; a freshly created
// catalog may not yet report it, which is a platform race and not an
// error.
func (workflow *catalogWorkflow) publishedURLReporter(host string, published bool, writer io.Writer) Executor {
	return func() error {
		url := publishedCatalogURL(host, workflow.catalog)
		workflow.result.PublishedURL = url

		if url != "" {
			log.Noticef("Catalog '%s' is published externally", workflow.catalog.Name)
			fmt.Fprintf(writer, HeaderValueFormat, Bold("Published URL"), url)
			return nil
		}

		if published {
			log.Warningf("Catalog '%s' created, but the published URL is not yet reported by the platform", workflow.catalog.Name)
			return nil
		}

		log.Noticef("Catalog '%s' created", workflow.catalog.Name)
		return nil
	}
}
