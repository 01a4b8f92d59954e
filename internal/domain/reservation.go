package domain

import "time"

// StatusPending is the status every reservation starts in. Administrators may
// overwrite it with any string; no closed set is enforced.
const StatusPending = "pending"

type Reservation struct {
	ID           string    `bson:"id" json:"id"`
	CustomerName string    `bson:"customer_name" json:"customerName"`
	Phone        string    `bson:"phone" json:"phone"`
	Date         string    `bson:"date" json:"date"`
	Time         string    `bson:"time" json:"time"`
	PartySize    int       `bson:"party_size" json:"partySize"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"-" json:"createdAt"`
}
