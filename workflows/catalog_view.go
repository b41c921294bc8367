package workflows

import (
	"fmt"
	"io"

	"github.com/bbazan/vCD-Catalog/common"
)

// NewCatalogViewer create a new workflow for showing catalog details
func NewCatalogViewer(ctx *common.Context, orgName string, catalogName string, writer io.Writer) Executor {

	workflow := new(catalogWorkflow)

	return newPipelineExecutor(
		workflow.sessionFinder(ctx.Config.Host, ctx.Sessions),
		workflow.orgFinder(orgName, ctx.DirectoryManager),
		workflow.catalogFinder(catalogName, ctx.DirectoryManager),
		workflow.catalogViewer(ctx.Config.Host, writer),
	)
}

func (workflow *catalogWorkflow) catalogViewer(host string, writer io.Writer) Executor {
	return func() error {
		catalog := workflow.catalog

		fmt.Fprintf(writer, HeaderValueFormat, Bold("Catalog"), catalog.Name)
		fmt.Fprintf(writer, HeaderValueFormat, Bold("Org"), workflow.org.Name)
		fmt.Fprintf(writer, HeaderValueFormat, Bold("HREF"), catalog.HREF)
		if catalog.Description != "" {
			fmt.Fprintf(writer, HeaderValueFormat, Bold("Description"), catalog.Description)
		}
		fmt.Fprintf(writer, HeaderValueFormat, Bold("Published"), publishedColumn(host, catalog))
		fmt.Fprintf(writer, HeaderValueFormat, Bold("Subscribed"), subscribedColumn(catalog))
		fmt.Fprintf(writer, HeaderValueFormat, Bold("Status"), statusColumn(catalog))

		return nil
	}
}
