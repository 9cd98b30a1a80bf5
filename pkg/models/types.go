package models

// ContractMultiplier is the number of shares covered by one equity option
// contract. Notional and P&L math assume this fixed size.
const ContractMultiplier = 100

// OptionType represents the kind of an option contract
type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

func (ot OptionType) String() string {
	return string(ot)
}

// OrderSide represents the side of an order or position
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

func (os OrderSide) String() string {
	return string(os)
}

// OrderType represents how an order is priced
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

func (ot OrderType) String() string {
	return string(ot)
}

// StrategyType identifies a trading strategy variant
type StrategyType string

const (
	StrategyLongCall StrategyType = "long_call"
	StrategyLongPut  StrategyType = "long_put"
	StrategyStraddle StrategyType = "straddle"
	StrategyStrangle StrategyType = "strangle"
)

func (st StrategyType) String() string {
	return string(st)
}
