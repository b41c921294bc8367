package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
)

type mockedSessions struct {
	mock.Mock
}

func (m *mockedSessions) FindSession(host string) (*common.Session, error) {
	args := m.Called(host)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Session), args.Error(1)
}

type mockedDirectory struct {
	mock.Mock
}

func (m *mockedDirectory) GetOrg(session *common.Session, name string) (*models.AdminOrg, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminOrg), args.Error(1)
}
func (m *mockedDirectory) GetOrgVdcs(session *common.Session, org *models.AdminOrg) ([]*models.Vdc, error) {
	args := m.Called(org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vdc), args.Error(1)
}
func (m *mockedDirectory) GetCatalog(session *common.Session, org *models.AdminOrg, name string) (*models.AdminCatalog, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminCatalog), args.Error(1)
}
func (m *mockedDirectory) ListCatalogs(session *common.Session, org *models.AdminOrg) ([]*models.AdminCatalog, error) {
	args := m.Called(org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AdminCatalog), args.Error(1)
}

type mockedCatalogManager struct {
	mock.Mock
}

func (m *mockedCatalogManager) CreateCatalog(session *common.Session, org *models.AdminOrg, catalog *models.AdminCatalog) error {
	args := m.Called(org, catalog)
	return args.Error(0)
}
func (m *mockedCatalogManager) PublishCatalog(session *common.Session, catalog *models.AdminCatalog, params *models.PublishExternalCatalogParams) error {
	args := m.Called(catalog, params)
	return args.Error(0)
}

var testSession = &common.Session{Host: "cloud.example.com", Token: "token-1"}
var testOrg = &models.AdminOrg{Name: "Acme", HREF: "https://cloud.example.com/api/admin/org/1"}

func twoVdcsWithGoldOnSecond() []*models.Vdc {
	return []*models.Vdc{
		{
			Name: "vdc-1",
			VdcStorageProfiles: &models.VdcStorageProfiles{
				VdcStorageProfile: []*models.Reference{
					{Name: "Silver", HREF: "https://cloud.example.com/api/vdcStorageProfile/1"},
				},
			},
		},
		{
			Name: "vdc-2",
			VdcStorageProfiles: &models.VdcStorageProfiles{
				VdcStorageProfile: []*models.Reference{
					{Name: "Gold", HREF: "https://cloud.example.com/api/vdcStorageProfile/2"},
				},
			},
		},
	}
}

func TestSessionFinder(t *testing.T) {
	assert := assert.New(t)

	sessions := new(mockedSessions)
	sessions.On("FindSession", "cloud.example.com").Return(testSession, nil)

	workflow := new(catalogWorkflow)
	err := workflow.sessionFinder("cloud.example.com", sessions)()
	assert.Nil(err)
	assert.Equal(testSession, workflow.session)

	sessions.AssertExpectations(t)
}

func TestSessionFinderNoSession(t *testing.T) {
	assert := assert.New(t)

	sessions := new(mockedSessions)
	sessions.On("FindSession", "cloud.example.com").Return(nil, common.NoSessionError{Host: "cloud.example.com"})

	workflow := new(catalogWorkflow)
	err := workflow.sessionFinder("cloud.example.com", sessions)()
	assert.NotNil(err)
	assert.IsType(common.NoSessionError{}, err)
	assert.Nil(workflow.session)
}

func TestSessionFinderEmptyHost(t *testing.T) {
	assert := assert.New(t)

	sessions := new(mockedSessions)

	workflow := new(catalogWorkflow)
	err := workflow.sessionFinder("", sessions)()
	assert.NotNil(err)

	sessions.AssertNumberOfCalls(t, "FindSession", 0)
}

func TestOrgFinderNotFound(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)
	directory.On("GetOrg", "Nonexistent").Return(nil, common.OrgNotFoundError{Org: "Nonexistent"})

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	err := workflow.orgFinder("Nonexistent", directory)()
	assert.NotNil(err)
	assert.IsType(common.OrgNotFoundError{}, err)
}

func TestStorageProfileResolver(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)
	directory.On("GetOrgVdcs", testOrg).Return(twoVdcsWithGoldOnSecond(), nil)

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	err := workflow.storageProfileResolver("Gold", directory)()
	assert.Nil(err)
	assert.NotNil(workflow.storageProfile)
	assert.Equal("https://cloud.example.com/api/vdcStorageProfile/2", workflow.storageProfile.HREF)
}

func TestStorageProfileResolverFirstMatchWins(t *testing.T) {
	assert := assert.New(t)

	vdcs := twoVdcsWithGoldOnSecond()
	vdcs[0].VdcStorageProfiles.VdcStorageProfile = append(vdcs[0].VdcStorageProfiles.VdcStorageProfile,
		&models.Reference{Name: "Gold", HREF: "https://cloud.example.com/api/vdcStorageProfile/9"})

	directory := new(mockedDirectory)
	directory.On("GetOrgVdcs", testOrg).Return(vdcs, nil)

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	err := workflow.storageProfileResolver("Gold", directory)()
	assert.Nil(err)
	assert.Equal("https://cloud.example.com/api/vdcStorageProfile/9", workflow.storageProfile.HREF)
}

func TestStorageProfileResolverEmptyName(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	err := workflow.storageProfileResolver("", directory)()
	assert.Nil(err)
	assert.Nil(workflow.storageProfile)

	// no remote enumeration for an empty profile name
	directory.AssertNumberOfCalls(t, "GetOrgVdcs", 0)
}

func TestStorageProfileResolverNoMatch(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)
	directory.On("GetOrgVdcs", testOrg).Return(twoVdcsWithGoldOnSecond(), nil)

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	// a miss is a warning, not an error
	err := workflow.storageProfileResolver("Nonexistent", directory)()
	assert.Nil(err)
	assert.Nil(workflow.storageProfile)
}

func TestStorageProfileResolverCaseSensitive(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)
	directory.On("GetOrgVdcs", testOrg).Return(twoVdcsWithGoldOnSecond(), nil)

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	err := workflow.storageProfileResolver("gold", directory)()
	assert.Nil(err)
	assert.Nil(workflow.storageProfile)
}

func TestCatalogRefetcherFailure(t *testing.T) {
	assert := assert.New(t)

	directory := new(mockedDirectory)
	directory.On("GetCatalog", "Test").Return(nil, common.RemoteCallError{Method: "GET", StatusCode: 500})

	workflow := new(catalogWorkflow)
	workflow.session = testSession
	workflow.org = testOrg

	err := workflow.catalogRefetcher("Test", directory)()
	assert.NotNil(err)
	assert.IsType(common.CreatedStatusUnknownError{}, err)
}

func TestInterpretSyncOutcome(t *testing.T) {
	assert := assert.New(t)

	// empty task list means the sync completed inline
	outcome := interpretSyncOutcome(nil)
	assert.Equal(common.OutcomeSuccess, outcome.State)

	outcome = interpretSyncOutcome(&models.TasksInProgress{})
	assert.Equal(common.OutcomeSuccess, outcome.State)

	outcome = interpretSyncOutcome(&models.TasksInProgress{
		Task: []*models.Task{{Status: "running"}},
	})
	assert.Equal(common.OutcomeInProgress, outcome.State)

	outcome = interpretSyncOutcome(&models.TasksInProgress{
		Task: []*models.Task{{Status: "error", Error: &models.TaskError{Message: "401 Unauthorized"}}},
	})
	assert.Equal(common.OutcomeError, outcome.State)
	assert.Equal("401 Unauthorized", outcome.Detail)

	outcome = interpretSyncOutcome(&models.TasksInProgress{
		Task: []*models.Task{{Status: "complete"}},
	})
	assert.Equal(common.OutcomeUnknown, outcome.State)
	assert.Equal("complete", outcome.Detail)
}

func TestInterpretSyncOutcomeFirstTaskOnly(t *testing.T) {
	assert := assert.New(t)

	outcome := interpretSyncOutcome(&models.TasksInProgress{
		Task: []*models.Task{
			{Status: "running"},
			{Status: "error", Error: &models.TaskError{Message: "second task failed"}},
		},
	})
	assert.Equal(common.OutcomeInProgress, outcome.State)
}

func TestInterpretSyncOutcomeErrorWithoutDetail(t *testing.T) {
	assert := assert.New(t)

	outcome := interpretSyncOutcome(&models.TasksInProgress{
		Task: []*models.Task{{Status: "error"}},
	})
	assert.Equal(common.OutcomeError, outcome.State)
	assert.Equal("error", outcome.Detail)
}

func TestPublishedCatalogURL(t *testing.T) {
	assert := assert.New(t)

	catalog := &models.AdminCatalog{
		Name: "Test",
		PublishExternalCatalogParams: &models.PublishExternalCatalogParams{
			IsPublishedExternally: true,
			CatalogPublishedUrl:   "/vcsp/lib/abcd/",
		},
	}
	assert.Equal("https://cloud.example.com/vcsp/lib/abcd/", publishedCatalogURL("cloud.example.com", catalog))

	assert.Equal("", publishedCatalogURL("cloud.example.com", &models.AdminCatalog{Name: "Test"}))

	// the platform may not have populated the URL yet
	assert.Equal("", publishedCatalogURL("cloud.example.com", &models.AdminCatalog{
		Name:                         "Test",
		PublishExternalCatalogParams: &models.PublishExternalCatalogParams{IsPublishedExternally: true},
	}))
}
