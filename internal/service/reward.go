package service

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// RewardPolicy decides how many points a redeemed code is worth
type RewardPolicy interface {
	Draw() decimal.Decimal
}

// UniformReward draws a whole number uniformly from [min, max]
type UniformReward struct {
	min int64
	max int64
}

func NewUniformReward(lo, hi int64) *UniformReward {
	if hi < lo {
		lo, hi = hi, lo
	}
	return &UniformReward{min: lo, max: hi}
}

func (p *UniformReward) Draw() decimal.Decimal {
	return decimal.NewFromInt(p.min + rand.Int64N(p.max-p.min+1))
}

// FixedReward always pays the same amount
type FixedReward decimal.Decimal

func (f FixedReward) Draw() decimal.Decimal {
	return decimal.Decimal(f)
}
