// File: utils/constants.go
package utils

import "time"

// GeoCachePrefix is the prefix used for geolocation cache keys.
const GeoCachePrefix = "geo:"

// ViewerCachePrefix is the prefix used for decoded viewer identity keys.
const ViewerCachePrefix = "viewer:"

// ViewerCacheTTL is the time-to-live for decoded viewer identities.
const ViewerCacheTTL = 10 * time.Minute

// RecentNotificationWindow separates "recent" from "older" notifications.
const RecentNotificationWindow = 30 * time.Minute
