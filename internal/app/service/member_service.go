package service

import (
	"errors"
	"time"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberService interface {
	ListMembers() ([]model.Member, error)
	GetMember(id string) (*model.Member, error)
	SetMembership(id string, isMember bool, expiry *time.Time) (*model.Member, error)
	ExpireLapsedMemberships(now time.Time) (int64, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) ListMembers() ([]model.Member, error) {
	return s.memberRepo.FindAll()
}

func (s *memberService) GetMember(id string) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// SetMembership sets the subscription flag. Clearing the flag also clears the expiry.
func (s *memberService) SetMembership(id string, isMember bool, expiry *time.Time) (*model.Member, error) {
	if !isMember {
		expiry = nil
	}
	if err := s.memberRepo.UpdateMembership(id, isMember, expiry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	logger.Info("Membership updated", map[string]interface{}{
		"member_id": id,
		"is_member": isMember,
	})
	return s.GetMember(id)
}

func (s *memberService) ExpireLapsedMemberships(now time.Time) (int64, error) {
	n, err := s.memberRepo.ExpireLapsed(now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("Lapsed memberships expired", map[string]interface{}{
			"count": n,
		})
	}
	return n, nil
}
