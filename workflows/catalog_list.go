package workflows

import (
	"io"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

// NewCatalogLister create a new workflow for listing the catalogs of
// an organization
func NewCatalogLister(ctx *common.Context, orgName string, writer io.Writer) Executor {

	workflow := new(catalogWorkflow)

	return newPipelineExecutor(
		workflow.sessionFinder(ctx.Config.Host, ctx.Sessions),
		workflow.orgFinder(orgName, ctx.DirectoryManager),
		workflow.catalogLister(ctx.Config.Host, ctx.DirectoryManager, writer),
	)
}

func (workflow *catalogWorkflow) catalogLister(host string, catalogLister common.CatalogLister, writer io.Writer) Executor {
	return func() error {
		catalogs, err := catalogLister.ListCatalogs(workflow.session, workflow.org)
		if err != nil {
			return err
		}

		table := CreateTableSection(writer, CatalogTableHeader)

		for _, catalog := range catalogs {
			table.Append([]string{
				Bold(catalog.Name),
				publishedColumn(host, catalog),
				subscribedColumn(catalog),
				statusColumn(catalog),
			})
		}

		table.Render()

		return nil
	}
}

func publishedColumn(host string, catalog *models.AdminCatalog) string {
	url := publishedCatalogURL(host, catalog)
	if url == "" {
		return NA
	}
	return url
}

func subscribedColumn(catalog *models.AdminCatalog) string {
	if catalog.ExternalCatalogSubscriptionParams == nil || catalog.ExternalCatalogSubscriptionParams.Location == "" {
		return NA
	}
	return catalog.ExternalCatalogSubscriptionParams.Location
}

func statusColumn(catalog *models.AdminCatalog) string {
	if catalog.Tasks == nil || len(catalog.Tasks.Task) == 0 {
		return StatusReady
	}
	return catalog.Tasks.Task[0].Status
}
