package contextx

import "github.com/rs/xid"

// TraceID идентификатор одного запуска розыгрыша, логгер из контекста несёт его атрибутом.
type TraceID string

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func (t TraceID) String() string {
	return string(t)
}
