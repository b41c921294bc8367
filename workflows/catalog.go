package workflows

import (
	"fmt"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

type catalogWorkflow struct {
	session        *common.Session
	org            *models.AdminOrg
	catalog        *models.AdminCatalog
	storageProfile *models.Reference
	document       *models.AdminCatalog
	result         common.CatalogResult
}

// Find the authenticated session for the endpoint host. First gate of
// every flow: nothing is fetched or mutated without a session.
func (workflow *catalogWorkflow) sessionFinder(host string, sessionFinder common.SessionFinder) Executor {
	return func() error {
		if host == "" {
			return fmt.Errorf("host must be provided")
		}
		log.Debugf("Looking up session for host '%s'", host)
		session, err := sessionFinder.FindSession(host)
		if err != nil {
			return err
		}
		workflow.session = session
		return nil
	}
}

// Resolve the named org to a live remote object and set the reference
func (workflow *catalogWorkflow) orgFinder(orgName string, orgResolver common.OrgResolver) Executor {
	return func() error {
		if orgName == "" {
			return fmt.Errorf("org must be provided")
		}
		log.Debugf("Resolving org '%s'", orgName)
		org, err := orgResolver.GetOrg(workflow.session, orgName)
		if err != nil {
			return err
		}
		workflow.org = org
		return nil
	}
}

// Resolve the named catalog within the org and set the reference
func (workflow *catalogWorkflow) catalogFinder(catalogName string, catalogGetter common.CatalogGetter) Executor {
	return func() error {
		log.Debugf("Resolving catalog '%s'", catalogName)
		catalog, err := catalogGetter.GetCatalog(workflow.session, workflow.org, catalogName)
		if err != nil {
			return err
		}
		workflow.catalog = catalog
		return nil
	}
}

// Scan the org's VDCs for a storage profile matching profileName. The
// scan is live on every call since placement targets change between
// calls. An empty name short-circuits without any remote call, and a
// missed match is a warning, not an error: creation proceeds and the
// platform picks a default. Ties resolve to the first profile found in
// enumeration order.
func (workflow *catalogWorkflow) storageProfileResolver(profileName string, vdcLister common.VdcLister) Executor {
	return func() error {
		if profileName == "" {
			return nil
		}

		vdcs, err := vdcLister.GetOrgVdcs(workflow.session, workflow.org)
		if err != nil {
			return err
		}

		for _, vdc := range vdcs {
			if vdc.VdcStorageProfiles == nil {
				continue
			}
			for _, profile := range vdc.VdcStorageProfiles.VdcStorageProfile {
				if profile.Name == profileName {
					log.Debugf("Resolved storage profile '%s' to '%s'", profileName, profile.HREF)
					workflow.storageProfile = profile
					return nil
				}
			}
		}

		log.Warningf("Unable to find storage profile '%s' in org '%s', the platform default will be used", profileName, workflow.org.Name)
		return nil
	}
}

// Build the creation document from the spec and the resolved storage
// profile
func (workflow *catalogWorkflow) catalogDocumentBuilder(spec *models.CatalogSpec) Executor {
	return func() error {
		document, err := models.NewAdminCatalog(spec, workflow.storageProfile)
		if err != nil {
			return err
		}
		workflow.document = document
		return nil
	}
}

// Issue the single mutating creation call
func (workflow *catalogWorkflow) catalogCreator(catalogCreator common.CatalogCreator) Executor {
	return func() error {
		log.Noticef("Creating catalog '%s' in org '%s'", workflow.document.Name, workflow.org.Name)
		return catalogCreator.CreateCatalog(workflow.session, workflow.org, workflow.document)
	}
}

// Re-fetch the catalog after a successful mutation. A failure here is
// reported as a distinct condition: the catalog already exists remotely.
func (workflow *catalogWorkflow) catalogRefetcher(catalogName string, catalogGetter common.CatalogGetter) Executor {
	return func() error {
		log.Debugf("Re-fetching catalog '%s'", catalogName)
		catalog, err := catalogGetter.GetCatalog(workflow.session, workflow.org, catalogName)
		if err != nil {
			return common.CreatedStatusUnknownError{Catalog: catalogName, Cause: err}
		}
		workflow.catalog = catalog
		return nil
	}
}

// interpretSyncOutcome classifies the re-fetched catalog's task list.
// An empty list means the subscription completed inline. The platform
// returns tasks in creation order and only the first is authoritative
// for a fresh catalog's initial sync.
func interpretSyncOutcome(tasks *models.TasksInProgress) common.Outcome {
	if tasks == nil || len(tasks.Task) == 0 {
		return common.Outcome{State: common.OutcomeSuccess}
	}

	task := tasks.Task[0]
	switch task.Status {
	case models.TaskStatusRunning:
		return common.Outcome{State: common.OutcomeInProgress, Detail: task.Operation}
	case models.TaskStatusError:
		if task.Error == nil {
			return common.Outcome{State: common.OutcomeError, Detail: task.Status}
		}
		return common.Outcome{State: common.OutcomeError, Detail: task.Error.Message}
	default:
		return common.Outcome{State: common.OutcomeUnknown, Detail: task.Status}
	}
}

// publishedCatalogURL composes the absolute subscription URL from the
// endpoint host and the relative path reported by the platform. Returns
// empty when the catalog is not published or the platform has not yet
// populated the URL, a known race on freshly created catalogs.
func publishedCatalogURL(host string, catalog *models.AdminCatalog) string {
	if catalog.PublishExternalCatalogParams == nil {
		return ""
	}
	relative := catalog.PublishExternalCatalogParams.CatalogPublishedUrl
	if relative == "" {
		return ""
	}
	return fmt.Sprintf("https://%s%s", host, relative)
}
