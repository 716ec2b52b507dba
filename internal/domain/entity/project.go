package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// Category classifies a project
type Category string

// Project categories
const (
	CategoryTech        Category = "tech"
	CategoryArt         Category = "art"
	CategorySocial      Category = "social"
	CategoryEnvironment Category = "environment"
	CategoryOther       Category = "other"
)

// ProjectStatus is the lifecycle state derived from a project's fields and the current time
type ProjectStatus string

// Derived project states
const (
	StatusOpen               ProjectStatus = "open"
	StatusGoalMet            ProjectStatus = "goal_met"
	StatusExpiredUnderfunded ProjectStatus = "expired_underfunded"
	StatusExpiredFunded      ProjectStatus = "expired_funded"
	StatusWithdrawn          ProjectStatus = "withdrawn"
	StatusInactive           ProjectStatus = "inactive"
)

// Project represents a funding campaign
type Project struct {
	ID            uint64          // Serial identifier
	CreatorID     string          // Owning user, immutable
	Title         string          // Campaign title
	Description   string          // Campaign description
	Category      Category        // One of the Category constants
	GoalAmount    decimal.Decimal // Target amount
	CurrentAmount decimal.Decimal // Raised amount, never negative
	Deadline      time.Time       // Absolute UTC instant, inclusive
	ImageURL      string          // Optional image reference
	IsActive      bool            // Whether the campaign takes contributions
	Withdrawn     bool            // One-way latch set by a successful withdrawal
	CreatedAt     time.Time       // When the project was created
}

// ProjectWithCreator is a project joined with its creator. Creator is nil when the user row is missing.
type ProjectWithCreator struct {
	Project
	Creator *User
}

// ProjectWithStats is a project annotated with its transactions and distinct backer count
type ProjectWithStats struct {
	Project
	Transactions []*Transaction
	BackerCount  int
}

// ParseCategory validates a category. An empty value defaults to CategoryOther.
func ParseCategory(category string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(category))); c {
	case "":
		return CategoryOther, nil
	case CategoryTech, CategoryArt, CategorySocial, CategoryEnvironment, CategoryOther:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}
}

// NewProject builds a project ready to be stored. The raised amount starts at zero,
// the project starts active and not withdrawn, and the deadline must lie after now.
func NewProject(
	creatorID string,
	title string,
	description string,
	category string,
	goalAmount string,
	deadline time.Time,
	imageURL string,
	now time.Time,
) (*Project, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, errs.ErrUnauthorized
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidRequest)
	}

	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	goal, err := ParseAmount(goalAmount)
	if err != nil {
		return nil, err
	}

	if deadline.IsZero() {
		return nil, fmt.Errorf("%w: missing", errs.ErrInvalidDeadline)
	}
	if !deadline.After(now) {
		return nil, errs.ErrDeadlineInPast
	}

	return &Project{
		CreatorID:     creatorID,
		Title:         title,
		Description:   strings.TrimSpace(description),
		Category:      cat,
		GoalAmount:    goal,
		CurrentAmount: Zero,
		Deadline:      deadline.UTC(),
		ImageURL:      strings.TrimSpace(imageURL),
		IsActive:      true,
		Withdrawn:     false,
		CreatedAt:     now.UTC(),
	}, nil
}

// DeadlinePassed reports whether now is strictly after the deadline. The deadline instant itself is still open.
func (p *Project) DeadlinePassed(now time.Time) bool {
	return now.After(p.Deadline)
}

// GoalMet reports whether the raised amount reached the goal
func (p *Project) GoalMet() bool {
	return p.CurrentAmount.GreaterThanOrEqual(p.GoalAmount)
}

// CanWithdraw reports whether the creator may claim the raised funds now
func (p *Project) CanWithdraw(now time.Time) bool {
	return !p.Withdrawn && p.GoalMet() && !p.DeadlinePassed(now) && p.IsActive
}

// NeedsRefund reports whether the campaign expired underfunded with money still held
func (p *Project) NeedsRefund(now time.Time) bool {
	return p.DeadlinePassed(now) && !p.GoalMet() && p.CurrentAmount.IsPositive()
}

// State derives the lifecycle state at the given time
func (p *Project) State(now time.Time) ProjectStatus {
	switch {
	case p.Withdrawn:
		return StatusWithdrawn
	case !p.IsActive:
		return StatusInactive
	case p.DeadlinePassed(now) && p.GoalMet():
		return StatusExpiredFunded
	case p.DeadlinePassed(now):
		return StatusExpiredUnderfunded
	case p.GoalMet():
		return StatusGoalMet
	default:
		return StatusOpen
	}
}

// CheckContribution returns the first precondition a new contribution violates at now
func (p *Project) CheckContribution(now time.Time) error {
	switch {
	case !p.IsActive:
		return errs.ErrProjectInactive
	case p.DeadlinePassed(now):
		return errs.ErrDeadlinePassed
	case p.GoalMet():
		return errs.ErrGoalAlreadyMet
	default:
		return nil
	}
}

// CheckWithdraw returns the first precondition a withdrawal by callerID violates at now
func (p *Project) CheckWithdraw(callerID string, now time.Time) error {
	switch {
	case callerID != p.CreatorID:
		return errs.ErrNotProjectCreator
	case p.Withdrawn:
		return errs.ErrAlreadyWithdrawn
	case !p.GoalMet():
		return errs.ErrGoalNotMet
	case p.DeadlinePassed(now):
		return errs.ErrDeadlinePassed
	case !p.IsActive:
		return errs.ErrProjectInactive
	default:
		return nil
	}
}

// ApplyContribution returns the raised amount after adding amount
func (p *Project) ApplyContribution(amount decimal.Decimal) decimal.Decimal {
	return p.CurrentAmount.Add(amount)
}

// ApplyRefund returns the raised amount after deducting amount, floored at zero
func (p *Project) ApplyRefund(amount decimal.Decimal) decimal.Decimal {
	return SubtractClamped(p.CurrentAmount, amount)
}

// CountBackers returns the number of distinct backers. A backer is the donor id when
// present, otherwise the wallet address. Contributions with neither are not counted.
func CountBackers(transactions []*Transaction) int {
	backers := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		switch {
		case tx.DonorID != "":
			backers["user:"+tx.DonorID] = struct{}{}
		case tx.DonorWalletAddress != "":
			backers["wallet:"+tx.DonorWalletAddress] = struct{}{}
		}
	}
	return len(backers)
}
