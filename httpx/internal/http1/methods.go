package http1

import "strconv"

// Method is a request method id. Ids follow the llhttp method map so
// they stay stable across the parser and anything keyed by them.
type Method int

const (
	MethodDelete Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodConnect
	MethodOptions
	MethodTrace
	MethodCopy
	MethodLock
	MethodMkcol
	MethodMove
	MethodPropfind
	MethodProppatch
	MethodSearch
	MethodUnlock
	MethodBind
	MethodRebind
	MethodUnbind
	MethodACL
	MethodReport
	MethodMkactivity
	MethodCheckout
	MethodMerge
	MethodMSearch
	MethodNotify
	MethodSubscribe
	MethodUnsubscribe
	MethodPatch
	MethodPurge
	MethodMkcalendar
	MethodLink
	MethodUnlink
	MethodSource
)

// methodTable is indexed by Method. It is built at compile time and
// never written, so concurrent readers need no locking.
var methodTable = [...]string{
	MethodDelete:      "DELETE",
	MethodGet:         "GET",
	MethodHead:        "HEAD",
	MethodPost:        "POST",
	MethodPut:         "PUT",
	MethodConnect:     "CONNECT",
	MethodOptions:     "OPTIONS",
	MethodTrace:       "TRACE",
	MethodCopy:        "COPY",
	MethodLock:        "LOCK",
	MethodMkcol:       "MKCOL",
	MethodMove:        "MOVE",
	MethodPropfind:    "PROPFIND",
	MethodProppatch:   "PROPPATCH",
	MethodSearch:      "SEARCH",
	MethodUnlock:      "UNLOCK",
	MethodBind:        "BIND",
	MethodRebind:      "REBIND",
	MethodUnbind:      "UNBIND",
	MethodACL:         "ACL",
	MethodReport:      "REPORT",
	MethodMkactivity:  "MKACTIVITY",
	MethodCheckout:    "CHECKOUT",
	MethodMerge:       "MERGE",
	MethodMSearch:     "M-SEARCH",
	MethodNotify:      "NOTIFY",
	MethodSubscribe:   "SUBSCRIBE",
	MethodUnsubscribe: "UNSUBSCRIBE",
	MethodPatch:       "PATCH",
	MethodPurge:       "PURGE",
	MethodMkcalendar:  "MKCALENDAR",
	MethodLink:        "LINK",
	MethodUnlink:      "UNLINK",
	MethodSource:      "SOURCE",
}

// MethodFromToken matches tok exactly (case-sensitive) against the
// canonical upper-case tokens.
func MethodFromToken(tok string) (Method, bool) {
	for i, s := range methodTable {
		if s == tok {
			return Method(i), true
		}
	}
	return 0, false
}

// MethodName returns the canonical token for m, or false if m is not in
// the table.
func MethodName(m Method) (string, bool) {
	if m < 0 || int(m) >= len(methodTable) {
		return "", false
	}
	return methodTable[m], true
}

// Methods returns every method in id order.
func Methods() []Method {
	ms := make([]Method, len(methodTable))
	for i := range ms {
		ms[i] = Method(i)
	}
	return ms
}

func (m Method) String() string {
	if s, ok := MethodName(m); ok {
		return s
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}
