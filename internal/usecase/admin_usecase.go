package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/pquerna/otp/totp"
	"github.com/xuri/excelize/v2"
)

type adminUsecase struct {
	repo       domain.AdminRepository
	skills     domain.SkillRepository
	courses    domain.CourseRepository
	totpSecret string
}

func NewAdminUsecase(repo domain.AdminRepository, skills domain.SkillRepository, courses domain.CourseRepository, totpSecret string) domain.AdminUsecase {
	return &adminUsecase{
		repo:       repo,
		skills:     skills,
		courses:    courses,
		totpSecret: totpSecret,
	}
}

func requireAdmin(ctx context.Context) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func (u *adminUsecase) AuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	return u.repo.ListAuditLogs(ctx, limit)
}

func (u *adminUsecase) PopularCourses(ctx context.Context, limit int) ([]domain.Course, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return u.courses.PopularCourses(ctx, limit)
}

func (u *adminUsecase) TopSkills(ctx context.Context, limit int) ([]domain.TopSkill, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return u.skills.TopSkills(ctx, limit)
}

// TopSkillsReport renders the demand ranking as an xlsx workbook for
// offline review.
func (u *adminUsecase) TopSkillsReport(ctx context.Context, limit int) ([]byte, error) {
	skills, err := u.TopSkills(ctx, limit)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Top Skills"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"RANK", "SKILL", "CANDIDATES", "JOBS"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for i, s := range skills {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.SkillName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), s.CandidateCount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), s.JobCount)
	}
	f.SetColWidth(sheetName, "A", "D", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func (u *adminUsecase) PendingUsers(ctx context.Context) ([]domain.PendingUser, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.repo.ListPendingUsers(ctx)
}

func (u *adminUsecase) VerifyUser(ctx context.Context, adminID int64, role string, profileID int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if role != domain.RoleTrainer && role != domain.RoleEmployer {
		return apperror.BadRequest("Only trainer and employer accounts need verification")
	}
	if err := u.repo.VerifyProfile(ctx, role, profileID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return u.repo.RecordAudit(ctx, &domain.AuditLog{
		UserID:   &adminID,
		Action:   "verify",
		Entity:   role,
		EntityID: &profileID,
	})
}

func (u *adminUsecase) VerifyAllPending(ctx context.Context, adminID int64) (int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}
	count, err := u.repo.VerifyAllPending(ctx)
	if err != nil {
		return 0, err
	}
	if err := u.repo.RecordAudit(ctx, &domain.AuditLog{
		UserID: &adminID,
		Action: "verify_all",
		Entity: "verification_queue",
		Detail: fmt.Sprintf("approved %d pending profiles", count),
	}); err != nil {
		return 0, err
	}
	return count, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.repo.ListUsers(ctx)
}

func (u *adminUsecase) SetUserActive(ctx context.Context, adminID, userID int64, active bool) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if adminID == userID {
		return apperror.BadRequest("You cannot deactivate your own account")
	}
	if err := u.repo.SetUserActive(ctx, userID, active); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	action := "deactivate"
	if active {
		action = "activate"
	}
	return u.repo.RecordAudit(ctx, &domain.AuditLog{
		UserID:   &adminID,
		Action:   action,
		Entity:   "user",
		EntityID: &userID,
	})
}

// DeleteUser permanently removes an account and its cascading content.
// Destructive, so it demands a fresh TOTP code on top of the admin role.
func (u *adminUsecase) DeleteUser(ctx context.Context, adminID, userID int64, totpCode string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if adminID == userID {
		return apperror.BadRequest("You cannot delete your own account")
	}
	if u.totpSecret == "" {
		return apperror.Forbidden("Account deletion is disabled: no step-up secret configured")
	}
	if !totp.Validate(totpCode, u.totpSecret) {
		return apperror.Forbidden("Invalid verification code")
	}

	if err := u.repo.DeleteUser(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return u.repo.RecordAudit(ctx, &domain.AuditLog{
		UserID:   &adminID,
		Action:   "delete",
		Entity:   "user",
		EntityID: &userID,
	})
}
