package logx

const (
	FieldAppName     = "app-name"
	FieldAppVersion  = "app-version"
	FieldBonusNumber = "bonus-number"
	FieldCount       = "count"
	FieldError       = "error"
	FieldRanks       = "ranks"
	FieldTicket      = "ticket"
	FieldTickets     = "tickets"
	FieldTraceID     = "trace-id"
	FieldWinning     = "winning-numbers"
)
