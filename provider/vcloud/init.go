package vcloud

import (
	"github.com/bbazan/vCD-Catalog/common"
)

// InitializeContext loads manager objects for the configured endpoint.
// A nil transport gets the default net/http transport; tests and
// embedders may inject their own.
func InitializeContext(ctx *common.Context, transport common.Transport) error {
	if transport == nil {
		transport = NewTransport(ctx.Config.Insecure)
	}

	var err error

	// initialize session store
	ctx.Sessions, err = newSessionStore(ctx.Config.Tokens)
	if err != nil {
		return err
	}

	// initialize DirectoryManager
	ctx.DirectoryManager, err = newDirectoryManager(ctx.Config.Host, transport)
	if err != nil {
		return err
	}

	// initialize CatalogManager
	ctx.CatalogManager, err = newCatalogManager(transport)
	if err != nil {
		return err
	}

	return nil
}
