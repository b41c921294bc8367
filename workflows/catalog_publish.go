package workflows

import (
	"io"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

// NewCatalogPublisher create a new workflow for publishing an existing
// catalog to external organizations
func NewCatalogPublisher(ctx *common.Context, orgName string, catalogName string, settings *models.PublishSettings, writer io.Writer) Executor {

	workflow := new(catalogWorkflow)

	return newPipelineExecutor(
		workflow.sessionFinder(ctx.Config.Host, ctx.Sessions),
		workflow.orgFinder(orgName, ctx.DirectoryManager),
		workflow.catalogFinder(catalogName, ctx.DirectoryManager),
		workflow.catalogPublisher(settings, ctx.CatalogManager),
		workflow.catalogRefetcher(catalogName, ctx.DirectoryManager),
		workflow.publishedURLReporter(ctx.Config.Host, settings.PublishedExternally, writer),
	)
}

// Issue the publish action against the resolved catalog
func (workflow *catalogWorkflow) catalogPublisher(settings *models.PublishSettings, catalogPublisher common.CatalogPublisher) Executor {
	return func() error {
		if settings.Password == "" && settings.PublishedExternally {
			log.Warningf("No subscription password set, the feed of catalog '%s' will be unprotected", workflow.catalog.Name)
		}
		log.Noticef("Publishing catalog '%s' in org '%s'", workflow.catalog.Name, workflow.org.Name)
		params := models.NewPublishExternalCatalogParams(settings)
		return catalogPublisher.PublishCatalog(workflow.session, workflow.catalog, params)
	}
}
