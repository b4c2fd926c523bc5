package httpx

import "dqx0.com/go/restverb/httpx/internal/http1"

// Method is a native method-table id as assigned by the HTTP/1.1 parser.
type Method = http1.Method

const (
	MethodDelete      = http1.MethodDelete
	MethodGet         = http1.MethodGet
	MethodHead        = http1.MethodHead
	MethodPost        = http1.MethodPost
	MethodPut         = http1.MethodPut
	MethodConnect     = http1.MethodConnect
	MethodOptions     = http1.MethodOptions
	MethodTrace       = http1.MethodTrace
	MethodCopy        = http1.MethodCopy
	MethodLock        = http1.MethodLock
	MethodMkcol       = http1.MethodMkcol
	MethodMove        = http1.MethodMove
	MethodPropfind    = http1.MethodPropfind
	MethodProppatch   = http1.MethodProppatch
	MethodSearch      = http1.MethodSearch
	MethodUnlock      = http1.MethodUnlock
	MethodBind        = http1.MethodBind
	MethodRebind      = http1.MethodRebind
	MethodUnbind      = http1.MethodUnbind
	MethodACL         = http1.MethodACL
	MethodReport      = http1.MethodReport
	MethodMkactivity  = http1.MethodMkactivity
	MethodCheckout    = http1.MethodCheckout
	MethodMerge       = http1.MethodMerge
	MethodMSearch     = http1.MethodMSearch
	MethodNotify      = http1.MethodNotify
	MethodSubscribe   = http1.MethodSubscribe
	MethodUnsubscribe = http1.MethodUnsubscribe
	MethodPatch       = http1.MethodPatch
	MethodPurge       = http1.MethodPurge
	MethodMkcalendar  = http1.MethodMkcalendar
	MethodLink        = http1.MethodLink
	MethodUnlink      = http1.MethodUnlink
	MethodSource      = http1.MethodSource
)
