package domain

const (
	TxRecharge   = "RECHARGE"
	TxService    = "SERVICE"
	TxCommission = "COMMISSION"
	TxWithdrawal = "WITHDRAWAL"
	TxIncome     = "INCOME"
	TxSavings    = "SAVINGS"
	TxBonus      = "BONUS"
	TxReferral1  = "REFERRAL_1"
	TxReferral2  = "REFERRAL_2"
	TxReferral3  = "REFERRAL_3"
	TxReferral4  = "REFERRAL_4"
	TxReferral5  = "REFERRAL_5"
)

const (
	CashflowService    = "SERVICE"
	CashflowWithdraws  = "WITHDRAWS"
	CashflowAdditional = "ADDITIONAL"
)

type Shape int

const (
	ShapeIncome Shape = iota + 1
	ShapeExpense
)

// transactionShapes fixes which side of a posting each type may carry.
var transactionShapes = map[string]Shape{
	TxRecharge:   ShapeIncome,
	TxIncome:     ShapeIncome,
	TxSavings:    ShapeIncome,
	TxBonus:      ShapeIncome,
	TxReferral1:  ShapeIncome,
	TxReferral2:  ShapeIncome,
	TxReferral3:  ShapeIncome,
	TxReferral4:  ShapeIncome,
	TxReferral5:  ShapeIncome,
	TxService:    ShapeExpense,
	TxCommission: ShapeExpense,
	TxWithdrawal: ShapeExpense,
}

func ShapeOf(txType string) (Shape, bool) {
	s, ok := transactionShapes[txType]
	return s, ok
}

// IsGrantable lists the credit types an administrator may post by hand.
func IsGrantable(txType string) bool {
	switch txType {
	case TxBonus, TxReferral1, TxReferral2, TxReferral3, TxReferral4, TxReferral5:
		return true
	}
	return false
}

// Posting is a request to append one confirmed entry to a user's ledger.
type Posting struct {
	UserID          int
	Income          float64
	Expense         float64
	Type            string
	ClientRequestID *int
	Description     string
}
