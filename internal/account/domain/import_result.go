package domain

// ImportResult describes what an import installed in the configuration directory.
type ImportResult struct {
	// Container is "pem" or "pkcs12" when the imported file was a bare
	// certificate rather than publish settings, empty otherwise.
	Container string
	// Subscriptions declared by the imported publish settings.
	Subscriptions []Subscription
	// Current is the subscription selected by the import, nil when the
	// document declares none.
	Current *Subscription
	// CertificatePath is set when the stored management certificate belongs
	// to Current, or to the imported container.
	CertificatePath string
}

// IsCertificateOnly reports whether the import installed only a certificate.
func (r *ImportResult) IsCertificateOnly() bool {
	return r.Container != ""
}
