package cache

import (
	"strconv"
	"strings"
)

const keyPrefix = "bilemo"

// CustomerListKey addresses the cached list of every customer.
func CustomerListKey() string {
	return keyPrefix + ":customer:list"
}

// CustomerUsersKey addresses the cached users of one customer.
func CustomerUsersKey(customerID int64) string {
	return keyPrefix + ":customer:" + strconv.FormatInt(customerID, 10) + ":users"
}

// ProductListKey addresses the cached product catalogue.
func ProductListKey() string {
	return keyPrefix + ":product:list"
}

// family collapses numeric segments so metrics stay low-cardinality.
func family(key string) string {
	parts := strings.Split(key, ":")
	for i, p := range parts {
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "id"
		}
	}
	return strings.Join(parts, ":")
}
