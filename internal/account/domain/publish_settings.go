// Package domain defines the account model: publish settings documents, the
// subscriptions they declare and the locally persisted selection state.
package domain

import (
	"strings"
)

// SchemaVersion2 is the publish settings schema version that carries
// management certificates per subscription instead of on the profile.
const SchemaVersion2 = "2.0"

// PublishSettings is a parsed publish settings document.
//
// Subscriptions are always an ordered slice in document order, whatever the
// number of Subscription elements in the source XML.
type PublishSettings struct {
	// URL is the profile-level service management endpoint override.
	URL string
	// SchemaVersion is the profile SchemaVersion attribute ("" for 1.0 files).
	SchemaVersion string
	// ManagementCertificate is the profile-level base64 PKCS#12 certificate.
	ManagementCertificate string
	// Subscriptions declared by the document, possibly empty.
	Subscriptions []Subscription
}

// HasDocumentCertificate reports whether the profile carries a certificate.
func (p *PublishSettings) HasDocumentCertificate() bool {
	return p.ManagementCertificate != ""
}

// Subscription is one subscription identity declared in publish settings.
type Subscription struct {
	// ID is the subscription id, unique within a document.
	ID string `json:"id"`
	// Name is the display name. Names are not guaranteed to be unique.
	Name string `json:"name"`
	// ManagementCertificate is the base64 PKCS#12 blob, inherited from the
	// profile when the subscription element has none.
	ManagementCertificate string `json:"-"`
	// ServiceManagementURL is the management endpoint for this subscription.
	ServiceManagementURL string `json:"serviceManagementUrl,omitempty"`
}

// HasCertificate reports whether the subscription carries certificate material.
func (s *Subscription) HasCertificate() bool {
	return s.ManagementCertificate != ""
}

// FindSubscription returns the subscription matching selector by id or by
// name, ignoring case.
//
// Ids are matched before names: a subscription stays reachable by its id even
// if an earlier subscription's name equals it. Within a pass the first match in
// document order wins.
func FindSubscription(subscriptions []Subscription, selector string) (*Subscription, bool) {
	if selector == "" {
		return nil, false
	}
	for i := range subscriptions {
		if strings.EqualFold(subscriptions[i].ID, selector) {
			sub := subscriptions[i]
			return &sub, true
		}
	}
	for i := range subscriptions {
		if strings.EqualFold(subscriptions[i].Name, selector) {
			sub := subscriptions[i]
			return &sub, true
		}
	}
	return nil, false
}

// FindSubscriptionByID returns the subscription whose id equals id, ignoring case.
func FindSubscriptionByID(subscriptions []Subscription, id string) (*Subscription, bool) {
	if id == "" {
		return nil, false
	}
	for i := range subscriptions {
		if strings.EqualFold(subscriptions[i].ID, id) {
			sub := subscriptions[i]
			return &sub, true
		}
	}
	return nil, false
}

// DuplicateNames returns the subscription names (as first seen) that appear
// more than once, compared case-insensitively, in document order.
func DuplicateNames(subscriptions []Subscription) []string {
	seen := make(map[string]int, len(subscriptions))
	var duplicates []string
	for _, sub := range subscriptions {
		key := strings.ToLower(sub.Name)
		seen[key]++
		if seen[key] == 2 {
			duplicates = append(duplicates, sub.Name)
		}
	}
	return duplicates
}

// IsAmbiguousName reports whether name is shared by more than one subscription.
func IsAmbiguousName(subscriptions []Subscription, name string) bool {
	count := 0
	for _, sub := range subscriptions {
		if strings.EqualFold(sub.Name, name) {
			count++
		}
	}
	return count > 1
}
