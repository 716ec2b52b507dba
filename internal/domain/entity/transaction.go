package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// TransactionType distinguishes on-chain contributions from simulated ones
type TransactionType string

// Transaction types
const (
	TypeReal TransactionType = "real"
	TypeDemo TransactionType = "demo"
)

// Transaction is an immutable funding contribution
type Transaction struct {
	ID                 uint64          // Unique identifier for the transaction
	ProjectID          uint64          // Project this contribution belongs to
	DonorID            string          // Contributing user, empty for anonymous chain senders
	DonorWalletAddress string          // External chain address, optional
	Amount             decimal.Decimal // Contributed amount, always positive
	Type               TransactionType // real or demo
	TransactionHash    string          // Chain transaction identifier, real contributions only
	CreatedAt          time.Time       // When the contribution was recorded
}

// ParseTransactionType validates a transaction type
func ParseTransactionType(transactionType string) (TransactionType, error) {
	switch t := TransactionType(strings.TrimSpace(transactionType)); t {
	case TypeReal, TypeDemo:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, transactionType)
	}
}

// NewTransaction validates contribution input and builds the transaction to record.
// The project-level preconditions are checked by the funding engine, not here.
func NewTransaction(
	projectID uint64,
	donorID string,
	walletAddress string,
	amount string,
	transactionType string,
	transactionHash string,
	now time.Time,
) (*Transaction, error) {
	if projectID == 0 {
		return nil, errs.ErrInvalidID
	}

	txType, err := ParseTransactionType(transactionType)
	if err != nil {
		return nil, err
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	hash := ""
	if txType == TypeReal {
		hash = NormalizeTransactionHash(transactionHash)
		if hash == "" {
			return nil, errs.ErrMissingTransactionHash
		}
	}

	return &Transaction{
		ProjectID:          projectID,
		DonorID:            strings.TrimSpace(donorID),
		DonorWalletAddress: NormalizeWalletAddress(walletAddress),
		Amount:             value,
		Type:               txType,
		TransactionHash:    hash,
		CreatedAt:          now.UTC(),
	}, nil
}

// NormalizeWalletAddress returns the EIP-55 checksum form of a hex address.
// Anything that is not a hex address is returned trimmed and otherwise untouched.
func NormalizeWalletAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// NormalizeTransactionHash lower-cases a 32-byte 0x-prefixed hash.
// Other identifiers are returned trimmed.
func NormalizeTransactionHash(hash string) string {
	hash = strings.TrimSpace(hash)
	if raw, err := hexutil.Decode(hash); err == nil && len(raw) == common.HashLength {
		return common.BytesToHash(raw).Hex()
	}
	return hash
}
