// file: service/annotation_service_test.go

package service

import (
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"lifeseeker-api/model"
)

type mockAnnotationRepo struct{ mock.Mock }

func (m *mockAnnotationRepo) ReplaceLists(username string, lists *model.AnnotationLists) error {
	args := m.Called(username, lists)
	return args.Error(0)
}
func (m *mockAnnotationRepo) AddValue(username, listType, value string) error {
	args := m.Called(username, listType, value)
	return args.Error(0)
}
func (m *mockAnnotationRepo) GetList(username, listType string) ([]string, error) {
	args := m.Called(username, listType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *mockAnnotationRepo) GetAllLists(username string) (*model.AnnotationLists, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnnotationLists), args.Error(1)
}

func newTestAnnotationService(t *testing.T, repo *mockAnnotationRepo) *AnnotationService {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAnnotationService(repo, client)
}

func TestAnnotationService_GetList_CacheAside(t *testing.T) {
	repo := new(mockAnnotationRepo)
	// The repository must only be hit once; the second read is a cache hit.
	repo.On("GetList", "nvtu", model.ListTypeLocation).
		Return([]string{"home", "office"}, nil).Once()

	svc := newTestAnnotationService(t, repo)

	list, err := svc.GetList("nvtu", model.ListTypeLocation)
	assert.NoError(t, err)
	assert.Equal(t, model.ListTypeLocation, list.ListType)
	assert.Equal(t, []string{"home", "office"}, list.DataList)

	cached, err := svc.GetList("nvtu", model.ListTypeLocation)
	assert.NoError(t, err)
	assert.Equal(t, list, cached)

	repo.AssertExpectations(t)
}

func TestAnnotationService_AddValue_InvalidatesCache(t *testing.T) {
	repo := new(mockAnnotationRepo)
	repo.On("GetList", "nvtu", model.ListTypeActivity).
		Return([]string{"sedentary"}, nil).Once()

	svc := newTestAnnotationService(t, repo)

	_, err := svc.GetList("nvtu", model.ListTypeActivity)
	assert.NoError(t, err)

	repo.On("AddValue", "nvtu", model.ListTypeActivity, "walking").Return(nil).Once()
	repo.On("GetList", "nvtu", model.ListTypeActivity).
		Return([]string{"sedentary", "walking"}, nil).Once()

	list, err := svc.AddValue("nvtu", model.ListTypeActivity, "walking")
	assert.NoError(t, err)
	assert.Equal(t, []string{"sedentary", "walking"}, list.DataList)

	repo.AssertExpectations(t)
}

func TestAnnotationService_AddValue_InvalidListType(t *testing.T) {
	repo := new(mockAnnotationRepo)
	svc := newTestAnnotationService(t, repo)

	_, err := svc.AddValue("nvtu", "mood", "happy")
	assert.Equal(t, ErrAnnotationListNotFound, err)
	repo.AssertNotCalled(t, "AddValue")
}

func TestAnnotationService_GetList_EmptyIsNotFound(t *testing.T) {
	repo := new(mockAnnotationRepo)
	repo.On("GetList", "nvtu", model.ListTypeStressLevel).Return([]string{}, nil).Once()

	svc := newTestAnnotationService(t, repo)

	_, err := svc.GetList("nvtu", model.ListTypeStressLevel)
	assert.Equal(t, ErrAnnotationListNotFound, err)
}

func TestAnnotationService_SetDefaultLists(t *testing.T) {
	repo := new(mockAnnotationRepo)
	expected := &model.AnnotationLists{
		Username:        "nvtu",
		LocationList:    []string{"home"},
		StressLevelList: []string{"low", "medium", "high"},
		ActivityList:    []string{"sedentary"},
	}
	repo.On("ReplaceLists", "nvtu", mock.MatchedBy(func(lists *model.AnnotationLists) bool {
		return len(lists.StressLevelList) == 3
	})).Return(nil).Once()
	repo.On("GetAllLists", "nvtu").Return(expected, nil).Once()

	svc := newTestAnnotationService(t, repo)

	lists, err := svc.SetDefaultLists("nvtu", &model.InsertDefaultAnnotationsRequest{
		LocationList:    []string{"home"},
		StressLevelList: []string{"low", "medium", "high"},
		ActivityList:    []string{"sedentary"},
	})
	assert.NoError(t, err)
	assert.Equal(t, expected, lists)
	repo.AssertExpectations(t)
}

func TestAnnotationService_RepositoryError(t *testing.T) {
	repo := new(mockAnnotationRepo)
	expectedErr := errors.New("db error")
	repo.On("GetList", "nvtu", model.ListTypeLocation).Return(nil, expectedErr).Once()

	svc := newTestAnnotationService(t, repo)

	_, err := svc.GetList("nvtu", model.ListTypeLocation)
	assert.Equal(t, expectedErr, err)
}
