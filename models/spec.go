package models

import "fmt"

// CreationMode selects which parameter block a catalog creation
// document carries
type CreationMode int

// Available creation modes
const (
	ModePlain CreationMode = iota
	ModePublish
	ModeSubscribe
)

// PublishSettings is the caller's intent for external publication
type PublishSettings struct {
	PublishedExternally  bool   `yaml:"publishedExternally"`
	Password             string `yaml:"password,omitempty"`
	CacheEnabled         bool   `yaml:"cacheEnabled"`
	PreserveIdentityInfo bool   `yaml:"preserveIdentityInfo"`
}

// SubscriptionSettings is the caller's intent for subscribing to an
// externally published feed
type SubscriptionSettings struct {
	Location  string `yaml:"location"`
	Password  string `yaml:"password,omitempty"`
	LocalCopy bool   `yaml:"localCopy"`
}

// CatalogSpec is the declarative intent for one catalog operation
type CatalogSpec struct {
	Name           string
	Description    string
	Org            string
	StorageProfile string
	Mode           CreationMode
	Publish        *PublishSettings
	Subscription   *SubscriptionSettings
}

// Validate checks that the spec names its required fields and that the
// mode and settings agree. The platform rejects documents carrying both
// publish and subscription blocks, so the pairing is enforced here.
func (spec *CatalogSpec) Validate() error {
	if spec.Name == "" {
		return fmt.Errorf("catalog name must be provided")
	}
	if spec.Org == "" {
		return fmt.Errorf("organization must be provided")
	}
	switch spec.Mode {
	case ModePlain:
		if spec.Publish != nil || spec.Subscription != nil {
			return fmt.Errorf("plain catalog creation accepts no publish or subscription settings")
		}
	case ModePublish:
		if spec.Publish == nil {
			return fmt.Errorf("publish settings must be provided for a published catalog")
		}
		if spec.Subscription != nil {
			return fmt.Errorf("a catalog cannot be both published and subscribed")
		}
	case ModeSubscribe:
		if spec.Subscription == nil {
			return fmt.Errorf("subscription settings must be provided for a subscribed catalog")
		}
		if spec.Subscription.Location == "" {
			return fmt.Errorf("subscription location must be provided")
		}
		if spec.Publish != nil {
			return fmt.Errorf("a catalog cannot be both published and subscribed")
		}
	default:
		return fmt.Errorf("unknown creation mode %d", spec.Mode)
	}
	return nil
}
