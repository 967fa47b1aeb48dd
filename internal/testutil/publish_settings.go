package testutil

import (
	"fmt"
	"strings"
)

// SubscriptionEntry is one Subscription element of a generated document.
type SubscriptionEntry struct {
	ID                   string
	Name                 string
	Certificate          string
	ServiceManagementURL string
}

// PublishProfile describes a generated PublishProfile element.
type PublishProfile struct {
	SchemaVersion string
	URL           string
	Certificate   string
	Subscriptions []SubscriptionEntry
}

// PublishSettingsXML renders a publish settings document with the given profiles.
func PublishSettingsXML(profiles ...PublishProfile) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString("<PublishData>\n")
	for _, profile := range profiles {
		b.WriteString(`  <PublishProfile PublishMethod="AzureServiceManagementAPI"`)
		writeAttr(&b, "SchemaVersion", profile.SchemaVersion)
		writeAttr(&b, "Url", profile.URL)
		writeAttr(&b, "ManagementCertificate", profile.Certificate)
		b.WriteString(">\n")
		for _, sub := range profile.Subscriptions {
			b.WriteString("    <Subscription")
			writeAttr(&b, "ServiceManagementUrl", sub.ServiceManagementURL)
			writeAttr(&b, "Id", sub.ID)
			writeAttr(&b, "Name", sub.Name)
			writeAttr(&b, "ManagementCertificate", sub.Certificate)
			b.WriteString(" />\n")
		}
		b.WriteString("  </PublishProfile>\n")
	}
	b.WriteString("</PublishData>\n")
	return []byte(b.String())
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(b, ` %s="%s"`, name, value)
}
