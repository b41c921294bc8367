package vcloud

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

type directoryManager struct {
	baseURL   string
	transport common.Transport
}

// newDirectoryManager creates a DirectoryManager for one endpoint host
func newDirectoryManager(host string, transport common.Transport) (common.DirectoryManager, error) {
	log.Debugf("Connecting directory manager to host '%s'", host)
	return &directoryManager{
		baseURL:   fmt.Sprintf("https://%s", host),
		transport: transport,
	}, nil
}

func (directory *directoryManager) GetOrg(session *common.Session, name string) (*models.AdminOrg, error) {
	payload, err := directory.transport.Invoke(directory.baseURL+orgListPath, session.Token, "", "GET", nil)
	if err != nil {
		return nil, err
	}

	orgList := new(models.OrgList)
	if err := xml.Unmarshal(payload, orgList); err != nil {
		return nil, errors.Wrap(err, "unable to parse org list")
	}

	for _, reference := range orgList.Org {
		if reference.Name == name {
			return directory.getAdminOrg(session, reference)
		}
	}
	return nil, common.OrgNotFoundError{Org: name}
}

func (directory *directoryManager) GetOrgVdcs(session *common.Session, org *models.AdminOrg) ([]*models.Vdc, error) {
	if org.Vdcs == nil {
		return nil, nil
	}

	vdcs := make([]*models.Vdc, 0, len(org.Vdcs.Vdc))
	for _, reference := range org.Vdcs.Vdc {
		payload, err := directory.transport.Invoke(reference.HREF, session.Token, "", "GET", nil)
		if err != nil {
			return nil, err
		}
		vdc := new(models.Vdc)
		if err := xml.Unmarshal(payload, vdc); err != nil {
			return nil, errors.Wrapf(err, "unable to parse VDC '%s'", reference.Name)
		}
		vdcs = append(vdcs, vdc)
	}
	return vdcs, nil
}

func (directory *directoryManager) GetCatalog(session *common.Session, org *models.AdminOrg, name string) (*models.AdminCatalog, error) {
	if org.Catalogs != nil {
		for _, reference := range org.Catalogs.CatalogReference {
			if reference.Name == name {
				return directory.getCatalog(session, reference)
			}
		}
	}
	return nil, common.CatalogNotFoundError{Org: org.Name, Catalog: name}
}

func (directory *directoryManager) ListCatalogs(session *common.Session, org *models.AdminOrg) ([]*models.AdminCatalog, error) {
	if org.Catalogs == nil {
		return nil, nil
	}

	catalogs := make([]*models.AdminCatalog, 0, len(org.Catalogs.CatalogReference))
	for _, reference := range org.Catalogs.CatalogReference {
		catalog, err := directory.getCatalog(session, reference)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs, nil
}

func (directory *directoryManager) getAdminOrg(session *common.Session, reference *models.Reference) (*models.AdminOrg, error) {
	// the org list exposes the tenant view, the catalog and VDC
	// references live on the admin view of the same org
	adminHREF := strings.Replace(reference.HREF, orgListPath, adminOrgPath, 1)

	payload, err := directory.transport.Invoke(adminHREF, session.Token, "", "GET", nil)
	if err != nil {
		return nil, err
	}
	org := new(models.AdminOrg)
	if err := xml.Unmarshal(payload, org); err != nil {
		return nil, errors.Wrapf(err, "unable to parse org '%s'", reference.Name)
	}
	if org.HREF == "" {
		org.HREF = adminHREF
	}
	return org, nil
}

func (directory *directoryManager) getCatalog(session *common.Session, reference *models.Reference) (*models.AdminCatalog, error) {
	payload, err := directory.transport.Invoke(reference.HREF, session.Token, "", "GET", nil)
	if err != nil {
		return nil, err
	}
	catalog := new(models.AdminCatalog)
	if err := xml.Unmarshal(payload, catalog); err != nil {
		return nil, errors.Wrapf(err, "unable to parse catalog '%s'", reference.Name)
	}
	if catalog.HREF == "" {
		catalog.HREF = reference.HREF
	}
	return catalog, nil
}
