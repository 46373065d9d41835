package domain

type CtxKey string

const (
	KeySubjectID   CtxKey = "SubjectID"
	KeySubjectType CtxKey = "SubjectType"
	KeyRequestID   CtxKey = "RequestID"
)
