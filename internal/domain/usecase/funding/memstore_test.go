package funding

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/persistence"
)

// memStore is an in-memory ledger with no locking of its own: a read followed
// by a write from two goroutines loses one update unless the caller serializes.
type memStore struct {
	mu       sync.Mutex
	nextID   uint64
	projects map[uint64]entity.Project
	txs      map[uint64]entity.Transaction
	refunds  map[uint64]entity.RefundRequest
}

func newMemStore() *memStore {
	return &memStore{
		projects: map[uint64]entity.Project{},
		txs:      map[uint64]entity.Transaction{},
		refunds:  map[uint64]entity.RefundRequest{},
	}
}

func (m *memStore) id() uint64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addProject(creatorID, goal string, deadline time.Time) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.projects[id] = entity.Project{
		ID:            id,
		CreatorID:     creatorID,
		Title:         "project",
		Category:      entity.CategoryOther,
		GoalAmount:    decimal.RequireFromString(goal),
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		IsActive:      true,
	}
	return id
}

func (m *memStore) project(id uint64) entity.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects[id]
}

// persistence.UnitOfWork

func (m *memStore) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (m *memStore) Commit(context.Context) error                      { return nil }
func (m *memStore) Rollback(context.Context) error                    { return nil }

func (m *memStore) GetUserRepository(context.Context) persistence.UserRepository { return nil }
func (m *memStore) GetProjectRepository(context.Context) persistence.ProjectRepository {
	return memProjects{m}
}
func (m *memStore) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return memTransactions{m}
}
func (m *memStore) GetRefundRequestRepository(context.Context) persistence.RefundRequestRepository {
	return memRefunds{m}
}

type memProjects struct{ m *memStore }

func (r memProjects) ListActive(context.Context) ([]*entity.Project, error) { return nil, nil }

func (r memProjects) GetByID(_ context.Context, id uint64) (*entity.Project, error) {
	r.m.mu.Lock()
	p, ok := r.m.projects[id]
	r.m.mu.Unlock()
	if !ok {
		return nil, errs.ErrProjectNotFound
	}
	// widen the window between read and write
	runtime.Gosched()
	return &p, nil
}

func (r memProjects) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Project, error) {
	return r.GetByID(ctx, id)
}

func (r memProjects) GetWithCreator(context.Context, uint64) (*entity.ProjectWithCreator, error) {
	return nil, errs.ErrProjectNotFound
}

func (r memProjects) ListByCreator(context.Context, string) ([]*entity.ProjectWithStats, error) {
	return nil, nil
}

func (r memProjects) Create(_ context.Context, p *entity.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p.ID = r.m.id()
	r.m.projects[p.ID] = *p
	return nil
}

func (r memProjects) SetAmount(_ context.Context, id uint64, amount decimal.Decimal) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.projects[id]
	if !ok {
		return errs.ErrProjectNotFound
	}
	p.CurrentAmount = amount
	r.m.projects[id] = p
	return nil
}

func (r memProjects) SetWithdrawn(_ context.Context, id uint64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.projects[id]
	if !ok {
		return errs.ErrProjectNotFound
	}
	p.Withdrawn = true
	r.m.projects[id] = p
	return nil
}

type memTransactions struct{ m *memStore }

func (r memTransactions) Create(_ context.Context, tx *entity.Transaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if tx.TransactionHash != "" {
		for _, existing := range r.m.txs {
			if existing.TransactionHash == tx.TransactionHash {
				return errs.ErrDuplicateTransaction
			}
		}
	}
	tx.ID = r.m.id()
	r.m.txs[tx.ID] = *tx
	return nil
}

func (r memTransactions) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	tx, ok := r.m.txs[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return &tx, nil
}

func (r memTransactions) ListByProject(_ context.Context, projectID uint64) ([]*entity.Transaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range r.m.txs {
		if tx.ProjectID == projectID {
			out = append(out, &tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memRefunds struct{ m *memStore }

func (r memRefunds) Create(_ context.Context, req *entity.RefundRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	req.ID = r.m.id()
	r.m.refunds[req.ID] = *req
	return nil
}

func (r memRefunds) GetByID(_ context.Context, id uint64) (*entity.RefundRequest, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	req, ok := r.m.refunds[id]
	if !ok {
		return nil, errs.ErrRefundNotFound
	}
	return &req, nil
}

func (r memRefunds) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.RefundRequest, error) {
	return r.GetByID(ctx, id)
}

func (r memRefunds) SumByTransaction(_ context.Context, transactionID uint64) (decimal.Decimal, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	total := entity.Zero
	for _, req := range r.m.refunds {
		if req.TransactionID != nil && *req.TransactionID == transactionID {
			total = total.Add(req.Amount)
		}
	}
	return total, nil
}

func (r memRefunds) ListByCreator(context.Context, string) ([]*entity.RefundRequest, error) {
	return nil, nil
}

func (r memRefunds) SetApproved(_ context.Context, id uint64, approved bool) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	req, ok := r.m.refunds[id]
	if !ok {
		return errs.ErrRefundNotFound
	}
	req.Approved = approved
	r.m.refunds[id] = req
	return nil
}
