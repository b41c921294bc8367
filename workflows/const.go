package workflows

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("workflows")

// Bold is the specifier for bold formatted text values
var Bold = color.New(color.Bold).SprintFunc()

// CatalogTableHeader is the header array for the catalog table
var CatalogTableHeader = []string{CatalogHeader, PublishedHeader, SubscribedHeader, StatusHeader}

// Constants for rendering catalog state
const (
	CatalogHeader     = "Catalog"
	PublishedHeader   = "Published"
	SubscribedHeader  = "Subscribed"
	StatusHeader      = "Status"
	NA                = "N/A"
	HeaderValueFormat = "%s:\t%s\n"
	StatusReady       = "ready"
)

// CreateTableSection creates the standard output table used
func CreateTableSection(writer io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	return table
}
