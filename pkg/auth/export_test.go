package auth

import "time"

func (i *TokenIssuer) SetClock(now func() time.Time) {
	i.now = now
}
