// file: service/annotation_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lifeseeker-api/model"
	"lifeseeker-api/repository"
)

var ErrAnnotationListNotFound = errors.New("annotation list not found")

const annotationCacheTTL = 10 * time.Minute

// AnnotationService manages the selectable annotation value lists of a
// user, with a cache-aside strategy for the single-list reads the
// annotation UI polls most often.
type AnnotationService struct {
	annotationRepo repository.IAnnotationRepository
	cache          ICacheClient
}

func NewAnnotationService(annotationRepo repository.IAnnotationRepository, cache ICacheClient) *AnnotationService {
	return &AnnotationService{
		annotationRepo: annotationRepo,
		cache:          cache,
	}
}

func annotationCacheKey(username, listType string) string {
	return fmt.Sprintf("annotations:%s:%s", username, listType)
}

// SetDefaultLists replaces all three annotation lists with the supplied
// defaults and invalidates the cached lists.
func (s *AnnotationService) SetDefaultLists(username string, req *model.InsertDefaultAnnotationsRequest) (*model.AnnotationLists, error) {
	lists := &model.AnnotationLists{
		Username:        username,
		LocationList:    req.LocationList,
		StressLevelList: req.StressLevelList,
		ActivityList:    req.ActivityList,
	}
	if err := s.annotationRepo.ReplaceLists(username, lists); err != nil {
		return nil, err
	}
	s.invalidate(username, model.ListTypeLocation, model.ListTypeStressLevel, model.ListTypeActivity)
	return s.annotationRepo.GetAllLists(username)
}

// AddValue adds one value to one list and invalidates that list's cache.
func (s *AnnotationService) AddValue(username, listType, value string) (*model.AnnotationList, error) {
	if !model.ValidListType(listType) {
		return nil, ErrAnnotationListNotFound
	}
	if err := s.annotationRepo.AddValue(username, listType, value); err != nil {
		return nil, err
	}
	s.invalidate(username, listType)
	return s.GetList(username, listType)
}

// GetList returns one annotation list, serving from cache when possible.
func (s *AnnotationService) GetList(username, listType string) (*model.AnnotationList, error) {
	if !model.ValidListType(listType) {
		return nil, ErrAnnotationListNotFound
	}

	cacheKey := annotationCacheKey(username, listType)
	ctx := context.Background()

	// 1. Try to get data from Redis.
	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var list model.AnnotationList
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return &list, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	values, err := s.annotationRepo.GetList(username, listType)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrAnnotationListNotFound
	}

	list := &model.AnnotationList{
		ListType: listType,
		DataList: values,
	}

	// 3. Store the result in Redis for future requests.
	if data, err := json.Marshal(list); err == nil {
		s.cache.Set(ctx, cacheKey, data, annotationCacheTTL)
	}

	return list, nil
}

// GetAllLists returns all three lists. Not cached; the full set is only
// read on session start and freshness matters more there.
func (s *AnnotationService) GetAllLists(username string) (*model.AnnotationLists, error) {
	lists, err := s.annotationRepo.GetAllLists(username)
	if err != nil {
		return nil, err
	}
	if len(lists.LocationList) == 0 && len(lists.StressLevelList) == 0 && len(lists.ActivityList) == 0 {
		return nil, ErrAnnotationListNotFound
	}
	return lists, nil
}

func (s *AnnotationService) invalidate(username string, listTypes ...string) {
	keys := make([]string, 0, len(listTypes))
	for _, lt := range listTypes {
		keys = append(keys, annotationCacheKey(username, lt))
	}
	s.cache.Del(context.Background(), keys...)
}
