package store

import (
	"bytes"
	"encoding/asn1"
	"encoding/pem"
	"encoding/xml"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/azurecli/internal/account/domain"
	customValidation "github.com/allisson/azurecli/internal/validation"
)

// CertificateContainer classifies raw bytes that are not publish settings XML.
type CertificateContainer int

const (
	// ContainerNone means the bytes are not a recognizable certificate container.
	ContainerNone CertificateContainer = iota
	// ContainerPEM means the bytes carry PEM armor.
	ContainerPEM
	// ContainerPKCS12 means the bytes are a DER encoded PKCS#12 PFX structure.
	ContainerPKCS12
)

// String returns a human-readable container name.
func (c CertificateContainer) String() string {
	switch c {
	case ContainerPEM:
		return "pem"
	case ContainerPKCS12:
		return "pkcs12"
	default:
		return "none"
	}
}

// publishDataElement mirrors the root of a publish settings file.
//
// Subscription elements always decode into a slice, so a profile with a
// single subscription and a profile with many produce the same shape.
type publishDataElement struct {
	XMLName  xml.Name                `xml:"PublishData"`
	Profiles []publishProfileElement `xml:"PublishProfile"`
}

type publishProfileElement struct {
	SchemaVersion         string                `xml:"SchemaVersion,attr"`
	PublishMethod         string                `xml:"PublishMethod,attr"`
	URL                   string                `xml:"Url,attr"`
	ManagementCertificate string                `xml:"ManagementCertificate,attr"`
	Subscriptions         []subscriptionElement `xml:"Subscription"`
}

type subscriptionElement struct {
	ID                    string `xml:"Id,attr"`
	Name                  string `xml:"Name,attr"`
	ServiceManagementURL  string `xml:"ServiceManagementUrl,attr"`
	ManagementCertificate string `xml:"ManagementCertificate,attr"`
}

// pfxHeader is the leading part of a PKCS#12 PFX structure (RFC 7292).
type pfxHeader struct {
	Version  int
	AuthSafe asn1.RawValue
}

// Parse decodes a publish settings document.
//
// The document-level attributes come from the first PublishProfile.
// Subscriptions of every profile are returned in document order, each
// inheriting its profile's certificate and endpoint when it has none.
//
// Input that is not XML fails with ErrMalformedCredentials, unless it looks
// like a certificate container, in which case the XML error is returned
// wrapped with ErrCertificateContainer.
func Parse(raw []byte) (*domain.PublishSettings, error) {
	var data publishDataElement
	if err := xml.Unmarshal(raw, &data); err != nil {
		if container := DetectCertificateContainer(raw); container != ContainerNone {
			return nil, fmt.Errorf("%w (%s): %w", domain.ErrCertificateContainer, container, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCredentials, err)
	}

	settings := &domain.PublishSettings{
		Subscriptions: []domain.Subscription{},
	}
	for i, profile := range data.Profiles {
		if i == 0 {
			settings.URL = strings.TrimSpace(profile.URL)
			settings.SchemaVersion = strings.TrimSpace(profile.SchemaVersion)
			settings.ManagementCertificate = strings.TrimSpace(profile.ManagementCertificate)
		}
		for _, element := range profile.Subscriptions {
			settings.Subscriptions = append(settings.Subscriptions, newSubscription(profile, element))
		}
	}

	return settings, nil
}

func newSubscription(profile publishProfileElement, element subscriptionElement) domain.Subscription {
	sub := domain.Subscription{
		ID:                    strings.TrimSpace(element.ID),
		Name:                  strings.TrimSpace(element.Name),
		ManagementCertificate: strings.TrimSpace(element.ManagementCertificate),
		ServiceManagementURL:  strings.TrimSpace(element.ServiceManagementURL),
	}
	if sub.ManagementCertificate == "" {
		sub.ManagementCertificate = strings.TrimSpace(profile.ManagementCertificate)
	}
	if sub.ServiceManagementURL == "" {
		sub.ServiceManagementURL = strings.TrimSpace(profile.URL)
	}
	return sub
}

// Validate enforces the document invariants: a profile-level management
// certificate or schema version 2.0, and well formed, uniquely identified
// subscriptions with usable service management endpoints.
func Validate(settings *domain.PublishSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: empty document", domain.ErrInvalidPublishSettings)
	}
	if !settings.HasDocumentCertificate() && settings.SchemaVersion != domain.SchemaVersion2 {
		return domain.ErrInvalidPublishSettings
	}

	seen := make(map[string]struct{}, len(settings.Subscriptions))
	for i := range settings.Subscriptions {
		sub := settings.Subscriptions[i]
		err := validation.ValidateStruct(&sub,
			validation.Field(&sub.ID, validation.Required, customValidation.NotBlank, customValidation.NoWhitespace),
			validation.Field(&sub.Name, validation.Required, customValidation.NotBlank),
			validation.Field(&sub.ManagementCertificate, customValidation.Base64Certificate),
		)
		if err != nil {
			return fmt.Errorf("%w: subscription %d: %v", domain.ErrInvalidPublishSettings, i+1, err)
		}
		if err := customValidation.Endpoint.Validate(sub.ServiceManagementURL); err != nil {
			return fmt.Errorf("%w: %w: subscription %d: %v",
				domain.ErrInvalidPublishSettings, domain.ErrInvalidEndpoint, i+1, err)
		}

		key := strings.ToLower(sub.ID)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %w: %s", domain.ErrInvalidPublishSettings, domain.ErrDuplicateSubscription, sub.ID)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// DetectCertificateContainer reports whether raw looks like a PEM file or a
// DER encoded PKCS#12 structure. PEM files exported by openssl may carry
// "Bag Attributes" text before the first block.
func DetectCertificateContainer(raw []byte) CertificateContainer {
	trimmed := bytes.TrimSpace(raw)
	if bytes.HasPrefix(trimmed, []byte("-----BEGIN ")) {
		return ContainerPEM
	}
	if block, _ := pem.Decode(raw); block != nil {
		return ContainerPEM
	}

	var header pfxHeader
	if _, err := asn1.Unmarshal(raw, &header); err == nil && header.Version == 3 {
		return ContainerPKCS12
	}

	return ContainerNone
}
