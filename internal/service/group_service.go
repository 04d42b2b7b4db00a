package service

import (
	"errors"

	"gorm.io/gorm"

	"codaverse/internal/dto"
	"codaverse/internal/models"
	"codaverse/internal/repository"
)

type GroupService interface {
	List() ([]dto.GroupResponse, error)
	Get(id int64) (*dto.GroupResponse, error)
	Create(req *dto.GroupRequest) (*dto.GroupResponse, error)
	Update(id int64, req *dto.GroupRequest) (*dto.GroupResponse, error)
	Delete(id int64) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) List() ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, *dto.FromModelToGroupResponse(&groups[i]))
	}
	return responses, nil
}

func (s *groupService) Get(id int64) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return dto.FromModelToGroupResponse(group), nil
}

func (s *groupService) Create(req *dto.GroupRequest) (*dto.GroupResponse, error) {
	group := &models.Group{Name: req.Name}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return dto.FromModelToGroupResponse(group), nil
}

func (s *groupService) Update(id int64, req *dto.GroupRequest) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	group.Name = req.Name
	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	return dto.FromModelToGroupResponse(group), nil
}

func (s *groupService) Delete(id int64) error {
	if err := s.groupRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
