package services

import (
	"errors"
	"time"

	"menucloud/entity"
	"menucloud/repository"
	"menucloud/utils"

	"gorm.io/gorm"
)

const defaultPauseReason = "Paused by admin"

// TenantService is the super-admin side: tenant lifecycle (pause/unpause),
// user deletion guards and the analytics overview.
type TenantService struct {
	UserRepo    *repository.UserRepository
	RestRepo    *repository.RestaurantRepository
	UsageRepo   *repository.UsageRepository
	SessionRepo *repository.SessionRepository
}

func NewTenantService(userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository, usageRepo *repository.UsageRepository, sessionRepo *repository.SessionRepository) *TenantService {
	return &TenantService{
		UserRepo:    userRepo,
		RestRepo:    restRepo,
		UsageRepo:   usageRepo,
		SessionRepo: sessionRepo,
	}
}

// PauseTenant hides the tenant's public menu without touching any data.
func (s *TenantService) PauseTenant(tenantUserID uint, reason string) error {
	rest, err := s.tenantRestaurant(tenantUserID)
	if err != nil {
		return err
	}

	reason = utils.SanitizeInput(reason)
	if reason == "" {
		reason = defaultPauseReason
	}
	return s.RestRepo.UpdateFields(rest.ID, map[string]interface{}{
		"paused_at":     time.Now(),
		"paused_reason": reason,
	})
}

func (s *TenantService) UnpauseTenant(tenantUserID uint) error {
	rest, err := s.tenantRestaurant(tenantUserID)
	if err != nil {
		return err
	}
	return s.RestRepo.UpdateFields(rest.ID, map[string]interface{}{
		"paused_at":     nil,
		"paused_reason": nil,
	})
}

// DeleteUser soft-deletes any account, guarded against self-deletion and
// against removing the last live super_admin. The tenant's restaurant is
// left untouched. Open sessions are revoked so the deletion is effective
// immediately.
func (s *TenantService) DeleteUser(callerID, targetID uint) error {
	if callerID == targetID {
		return ErrSelfDeletion
	}

	target, err := s.UserRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if target.Role == entity.RoleSuperAdmin {
		count, err := s.UserRepo.CountSuperAdmins()
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastSuperAdmin
		}
	}

	if err := s.UserRepo.SoftDelete(targetID); err != nil {
		return err
	}
	return s.SessionRepo.DeleteForUser(targetID)
}

// ListUsers returns every live account regardless of role, so the admin
// can see (and delete) other super admins, not just tenants.
func (s *TenantService) ListUsers() ([]repository.UserAccount, error) {
	return s.UserRepo.ListAll()
}

// TenantRow is one line of the admin tenant list.
type TenantRow struct {
	UserID         uint       `json:"userId"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	CreatedAt      time.Time  `json:"createdAt"`
	RestaurantID   *uint      `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName,omitempty"`
	Slug           string     `json:"slug,omitempty"`
	TemplateID     string     `json:"templateId,omitempty"`
	PausedAt       *time.Time `json:"pausedAt,omitempty"`
	PausedReason   *string    `json:"pausedReason,omitempty"`
	TotalViews     int64      `json:"totalViews"`
	Views7d        int64      `json:"views7d"`
	Bandwidth30d   int64      `json:"bandwidth30d"`
}

func (s *TenantService) ListTenants() ([]TenantRow, error) {
	users, err := s.UserRepo.ListTenants()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sevenDaysAgo := repository.Day(now.AddDate(0, 0, -7))
	thirtyDaysAgo := repository.Day(now.AddDate(0, 0, -30))

	rows := make([]TenantRow, 0, len(users))
	for _, u := range users {
		row := TenantRow{
			UserID:       u.ID,
			Email:        u.Email,
			Name:         u.Name,
			CreatedAt:    u.CreatedAt,
			RestaurantID: u.RestaurantID,
		}
		if u.RestaurantID != nil {
			rest, err := s.RestRepo.FindByID(*u.RestaurantID)
			if err == nil {
				row.RestaurantName = rest.Name
				row.Slug = rest.Slug
				row.PausedAt = rest.PausedAt
				row.PausedReason = rest.PausedReason
			}
			if settings, err := s.RestRepo.FindSettings(*u.RestaurantID); err == nil {
				row.TemplateID = settings.TemplateID
			}

			if total, err := s.UsageRepo.SumAll(*u.RestaurantID); err == nil {
				row.TotalViews = total.PageViews
			}
			if last7, err := s.UsageRepo.SumSince(*u.RestaurantID, sevenDaysAgo); err == nil {
				row.Views7d = last7.PageViews
			}
			if last30, err := s.UsageRepo.SumSince(*u.RestaurantID, thirtyDaysAgo); err == nil {
				row.Bandwidth30d = last30.BandwidthBytes
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type AnalyticsOverview struct {
	TotalTenants      int64                        `json:"totalTenants"`
	ActiveTenants     int64                        `json:"activeTenants"`
	PausedTenants     int64                        `json:"pausedTenants"`
	PendingOnboarding int64                        `json:"pendingOnboarding"`
	ViewsToday        int64                        `json:"viewsToday"`
	ViewsLast7Days    int64                        `json:"viewsLast7Days"`
	ViewsLast30Days   int64                        `json:"viewsLast30Days"`
	Bandwidth30d      int64                        `json:"bandwidth30d"`
	TopRestaurants    []repository.RestaurantUsage `json:"topRestaurants"`
}

func (s *TenantService) Overview() (*AnalyticsOverview, error) {
	out := &AnalyticsOverview{}
	var err error

	if out.TotalTenants, err = s.UserRepo.CountTenants(); err != nil {
		return nil, err
	}
	if out.PendingOnboarding, err = s.UserRepo.CountPendingOnboarding(); err != nil {
		return nil, err
	}
	if out.ActiveTenants, err = s.RestRepo.CountActive(); err != nil {
		return nil, err
	}
	if out.PausedTenants, err = s.RestRepo.CountPaused(); err != nil {
		return nil, err
	}

	now := time.Now()
	today := repository.Day(now)
	sevenDaysAgo := repository.Day(now.AddDate(0, 0, -7))
	thirtyDaysAgo := repository.Day(now.AddDate(0, 0, -30))

	todayTotals, err := s.UsageRepo.SumSince(0, today)
	if err != nil {
		return nil, err
	}
	out.ViewsToday = todayTotals.PageViews

	last7, err := s.UsageRepo.SumSince(0, sevenDaysAgo)
	if err != nil {
		return nil, err
	}
	out.ViewsLast7Days = last7.PageViews

	last30, err := s.UsageRepo.SumSince(0, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	out.ViewsLast30Days = last30.PageViews
	out.Bandwidth30d = last30.BandwidthBytes

	top, err := s.UsageRepo.TopByBandwidth(thirtyDaysAgo, 5)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []repository.RestaurantUsage{}
	}
	out.TopRestaurants = top
	return out, nil
}

func (s *TenantService) tenantRestaurant(tenantUserID uint) (*entity.Restaurant, error) {
	user, err := s.UserRepo.FindTenantByID(tenantUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.RestaurantID == nil {
		return nil, ErrNotOnboarded
	}

	rest, err := s.RestRepo.FindByID(*user.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}
