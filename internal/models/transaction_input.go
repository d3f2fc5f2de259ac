package models

// TransactionInput is the raw form input for creating a transaction. Amount
// arrives as the string the user typed; IsExpense decides the stored sign.
type TransactionInput struct {
	UserID    string
	Title     string
	Amount    string
	Category  string
	IsExpense bool
}
