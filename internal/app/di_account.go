package app

import (
	"fmt"

	accountStore "github.com/allisson/azurecli/internal/account/store"
	accountUseCase "github.com/allisson/azurecli/internal/account/usecase"
)

// Store returns the credential store rooted at the configured directory.
func (c *Container) Store() *accountStore.Store {
	c.storeInit.Do(func() {
		c.store = accountStore.NewStore(c.config.ConfigDir, c.config.PFXPassword, c.Logger())
	})
	return c.store
}

// SubscriptionUseCase returns the subscription use case.
func (c *Container) SubscriptionUseCase() (accountUseCase.SubscriptionUseCase, error) {
	var err error
	c.subscriptionUseCaseInit.Do(func() {
		c.subscriptionUseCase, err = c.initSubscriptionUseCase()
		if err != nil {
			c.initErrors["subscriptionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["subscriptionUseCase"]; exists {
		return nil, storedErr
	}
	return c.subscriptionUseCase, nil
}

// CredentialUseCase returns the credential use case.
func (c *Container) CredentialUseCase() (accountUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// ProviderRegistrar returns the resource provider registrar used after import.
func (c *Container) ProviderRegistrar() accountUseCase.ProviderRegistrar {
	c.providerRegistrarInit.Do(func() {
		c.providerRegistrar = accountUseCase.NewLoggingProviderRegistrar(
			accountUseCase.DefaultResourceProviders,
			c.Logger(),
		)
	})
	return c.providerRegistrar
}

// initSubscriptionUseCase creates the subscription use case with all its dependencies.
func (c *Container) initSubscriptionUseCase() (accountUseCase.SubscriptionUseCase, error) {
	baseUseCase := accountUseCase.NewSubscriptionUseCase(
		accountUseCase.Config{StrictCertificateRefresh: c.config.StrictCertificateRefresh},
		c.Store(),
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for subscription use case: %w", err)
		}
		return accountUseCase.NewSubscriptionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCredentialUseCase creates the credential use case with all its dependencies.
func (c *Container) initCredentialUseCase() (accountUseCase.CredentialUseCase, error) {
	subscriptionUseCase, err := c.SubscriptionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription use case for credential use case: %w", err)
	}

	baseUseCase := accountUseCase.NewCredentialUseCase(c.Store(), subscriptionUseCase, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
		}
		return accountUseCase.NewCredentialUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
