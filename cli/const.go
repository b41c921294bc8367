package cli

import (
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("cli")

// Constants for available command names and options
const (
	CatalogCmd             = "catalog"
	CatalogAlias           = "cat"
	CatalogUsage           = "options for managing catalogs"
	CatalogArgUsage        = "<catalog>"
	CreateCmd              = "create"
	CreateUsage            = "create a catalog, optionally published externally"
	SubscribeCmd           = "subscribe"
	SubscribeAlias         = "sub"
	SubscribeUsage         = "create a catalog subscribed to an external feed"
	PublishCmd             = "publish"
	PublishUsage           = "publish an existing catalog to external organizations"
	ListCmd                = "list"
	ListAlias              = "ls"
	ListUsage              = "list catalogs"
	ShowCmd                = "show"
	ShowUsage              = "show catalog details"
	OrgFlagName            = "org"
	OrgFlag                = "org, o"
	OrgFlagUsage           = "organization owning the catalog"
	DescriptionFlagName    = "description"
	DescriptionFlag        = "description, d"
	DescriptionFlagUsage   = "catalog description"
	StorageProfileFlagName = "storage-profile"
	StorageProfileFlag     = "storage-profile, S"
	StorageProfileUsage    = "storage profile to place catalog content on"
	PublishFlagName        = "publish"
	PublishFlag            = "publish, P"
	PublishFlagUsage       = "publish the catalog externally after creation"
	PasswordFlagName       = "password"
	PasswordFlag           = "password, w"
	PasswordFlagUsage      = "password protecting the published feed or subscription"
	CacheFlagName          = "cache"
	CacheFlagUsage         = "enable caching of the published content"
	PreserveFlagName       = "preserve-identity"
	PreserveFlagUsage      = "preserve identity information in the published feed"
	URLFlagName            = "url"
	URLFlag                = "url, u"
	URLFlagUsage           = "location URL of the external published feed"
	LocalCopyFlagName      = "local-copy"
	LocalCopyFlagUsage     = "keep a full local copy of the subscribed content"
	NoCatalogValidation    = "catalog must be provided"
	NoURLValidation        = "subscription url must be provided"
)
