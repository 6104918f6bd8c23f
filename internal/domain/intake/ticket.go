package intake

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
)

const (
	TicketPrefix = "TCK-"
	ticketMin    = 100000
	ticketSpan   = 900000
)

// NewTicket returns TCK- followed by a random number in [100000, 999999].
func NewTicket() string {
	n, err := rand.Int(rand.Reader, big.NewInt(ticketSpan))
	if err != nil {
		return fmt.Sprintf("%s%d", TicketPrefix, ticketMin+mrand.Intn(ticketSpan))
	}
	return fmt.Sprintf("%s%d", TicketPrefix, ticketMin+n.Int64())
}
