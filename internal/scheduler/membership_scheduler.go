package scheduler

import (
	"time"

	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// MembershipScheduler 만료된 월회비 구독 해제 스케줄러
type MembershipScheduler struct {
	cron          *cron.Cron
	spec          string
	memberService service.MemberService
	now           func() time.Time
}

// NewMembershipScheduler 구독 만료 스케줄러 생성
// spec: cron 표현식 (예: "0 4 * * *" = 매일 4시 0분)
func NewMembershipScheduler(memberService service.MemberService, spec string) *MembershipScheduler {
	return &MembershipScheduler{
		cron:          cron.New(),
		spec:          spec,
		memberService: memberService,
		now:           time.Now,
	}
}

// Sweep 만료 회원 정리 1회 실행
func (s *MembershipScheduler) Sweep() (int64, error) {
	n, err := s.memberService.ExpireLapsedMemberships(s.now())
	if err != nil {
		logger.Error("Failed to expire lapsed memberships from scheduler", err)
		return 0, err
	}

	logger.Info("Membership sweep finished", map[string]interface{}{
		"expired": n,
	})
	return n, nil
}

// Start 스케줄러 시작 (시작 시 1회 즉시 정리)
func (s *MembershipScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled membership sweep", nil)
		_, _ = s.Sweep()
	})
	if err != nil {
		logger.Error("Failed to add cron job for membership sweep", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	_, _ = s.Sweep()

	s.cron.Start()
	logger.Info("Membership scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop 스케줄러 중지
func (s *MembershipScheduler) Stop() {
	logger.Info("Stopping membership scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Membership scheduler stopped", nil)
}
