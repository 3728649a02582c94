package snapshot

import (
	"encoding/hex"
	"fmt"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

// hashedFields fixes the field order of the fingerprint independently of the snapshot struct layout
type hashedFields struct {
	_msgpack struct{} `msgpack:",as_array"`

	Age                  int
	MonthlyIncome        float64
	MonthlyExpenses      float64
	TotalAssets          float64
	TotalLiabilities     float64
	NetPosition          float64
	CreditUtilization    float64
	EmergencyFundRatio   float64
	CasaBalance          float64
	InvestmentValue      float64
	InsuranceValue       float64
	CurrentEmergencyFund float64
	NetCashFlow          float64
}

// Hash returns a hex BLAKE2b-256 fingerprint of the snapshot
func Hash(s models.ClientSnapshot) (string, error) {
	b, err := msgpack.Marshal(hashedFields{
		Age:                  s.Age,
		MonthlyIncome:        s.MonthlyIncome,
		MonthlyExpenses:      s.MonthlyExpenses,
		TotalAssets:          s.TotalAssets,
		TotalLiabilities:     s.TotalLiabilities,
		NetPosition:          s.NetPosition,
		CreditUtilization:    s.CreditUtilization,
		EmergencyFundRatio:   s.EmergencyFundRatio,
		CasaBalance:          s.CasaBalance,
		InvestmentValue:      s.InvestmentValue,
		InsuranceValue:       s.InsuranceValue,
		CurrentEmergencyFund: s.CurrentEmergencyFund,
		NetCashFlow:          s.NetCashFlow,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// ShouldRegenerate reports whether a cached insight entry no longer matches the snapshot hash
func ShouldRegenerate(entry *models.CacheEntry, hash string) bool {
	return entry == nil || entry.VersionHash != hash
}
