package handlers

import (
	"shootdesk/cache"
	"shootdesk/services/geo"
)

// HandlerBundle groups all endpoint handlers and the dependencies their route
// middleware needs.
type HandlerBundle struct {
	Cache   cache.Store
	Locator geo.Locator

	Shoots        *ShootHandler
	Availability  *AvailabilityHandler
	Accounts      *AccountHandler
	Notifications *NotificationHandler
	Issues        *IssueHandler
	Public        *PublicHandler
}
