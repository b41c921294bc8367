package cli

import (
	"errors"
	"os"

	"github.com/urfave/cli"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/models"
	"github.com/bbazan/vCD-Catalog/workflows"
)

func newCatalogsCommand(ctx *common.Context) *cli.Command {

	cmd := &cli.Command{
		Name:    CatalogCmd,
		Aliases: []string{CatalogAlias},
		Usage:   CatalogUsage,
		Subcommands: []cli.Command{
			*newCatalogsCreateCommand(ctx),
			*newCatalogsSubscribeCommand(ctx),
			*newCatalogsPublishCommand(ctx),
			*newCatalogsListCommand(ctx),
			*newCatalogsShowCommand(ctx),
		},
	}

	return cmd
}

func newCatalogsCreateCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:      CreateCmd,
		Usage:     CreateUsage,
		ArgsUsage: CatalogArgUsage,
		Flags: []cli.Flag{
			cli.StringFlag{Name: OrgFlag, Usage: OrgFlagUsage},
			cli.StringFlag{Name: DescriptionFlag, Usage: DescriptionFlagUsage},
			cli.StringFlag{Name: StorageProfileFlag, Usage: StorageProfileUsage},
			cli.BoolFlag{Name: PublishFlag, Usage: PublishFlagUsage},
			cli.StringFlag{Name: PasswordFlag, Usage: PasswordFlagUsage},
			cli.BoolFlag{Name: CacheFlagName, Usage: CacheFlagUsage},
			cli.BoolFlag{Name: PreserveFlagName, Usage: PreserveFlagUsage},
		},
		Action: func(c *cli.Context) error {
			catalogName := c.Args().First()
			if len(catalogName) == 0 {
				cli.ShowCommandHelp(c, CreateCmd)
				return errors.New(NoCatalogValidation)
			}

			spec := &models.CatalogSpec{
				Name:           catalogName,
				Description:    c.String(DescriptionFlagName),
				Org:            common.NewStringIfNotEmpty(ctx.Config.Org, c.String(OrgFlagName)),
				StorageProfile: c.String(StorageProfileFlagName),
			}
			if c.Bool(PublishFlagName) {
				spec.Mode = models.ModePublish
				spec.Publish = &models.PublishSettings{
					PublishedExternally:  true,
					Password:             c.String(PasswordFlagName),
					CacheEnabled:         c.Bool(CacheFlagName),
					PreserveIdentityInfo: c.Bool(PreserveFlagName),
				}
			}

			workflow := workflows.NewCatalogCreator(ctx, spec, os.Stdout)
			return workflow()
		},
	}

	return cmd
}

func newCatalogsSubscribeCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:      SubscribeCmd,
		Aliases:   []string{SubscribeAlias},
		Usage:     SubscribeUsage,
		ArgsUsage: CatalogArgUsage,
		Flags: []cli.Flag{
			cli.StringFlag{Name: OrgFlag, Usage: OrgFlagUsage},
			cli.StringFlag{Name: DescriptionFlag, Usage: DescriptionFlagUsage},
			cli.StringFlag{Name: StorageProfileFlag, Usage: StorageProfileUsage},
			cli.StringFlag{Name: URLFlag, Usage: URLFlagUsage},
			cli.StringFlag{Name: PasswordFlag, Usage: PasswordFlagUsage},
			cli.BoolFlag{Name: LocalCopyFlagName, Usage: LocalCopyFlagUsage},
		},
		Action: func(c *cli.Context) error {
			catalogName := c.Args().First()
			if len(catalogName) == 0 {
				cli.ShowCommandHelp(c, SubscribeCmd)
				return errors.New(NoCatalogValidation)
			}
			if len(c.String(URLFlagName)) == 0 {
				cli.ShowCommandHelp(c, SubscribeCmd)
				return errors.New(NoURLValidation)
			}

			spec := &models.CatalogSpec{
				Name:           catalogName,
				Description:    c.String(DescriptionFlagName),
				Org:            common.NewStringIfNotEmpty(ctx.Config.Org, c.String(OrgFlagName)),
				StorageProfile: c.String(StorageProfileFlagName),
				Mode:           models.ModeSubscribe,
				Subscription: &models.SubscriptionSettings{
					Location:  c.String(URLFlagName),
					Password:  c.String(PasswordFlagName),
					LocalCopy: c.Bool(LocalCopyFlagName),
				},
			}

			workflow := workflows.NewSubscribedCatalogCreator(ctx, spec, os.Stdout)
			return workflow()
		},
	}

	return cmd
}

func newCatalogsPublishCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:      PublishCmd,
		Usage:     PublishUsage,
		ArgsUsage: CatalogArgUsage,
		Flags: []cli.Flag{
			cli.StringFlag{Name: OrgFlag, Usage: OrgFlagUsage},
			cli.StringFlag{Name: PasswordFlag, Usage: PasswordFlagUsage},
		},
		Action: func(c *cli.Context) error {
			catalogName := c.Args().First()
			if len(catalogName) == 0 {
				cli.ShowCommandHelp(c, PublishCmd)
				return errors.New(NoCatalogValidation)
			}

			settings := &models.PublishSettings{
				PublishedExternally: true,
				Password:            c.String(PasswordFlagName),
			}
			orgName := common.NewStringIfNotEmpty(ctx.Config.Org, c.String(OrgFlagName))

			workflow := workflows.NewCatalogPublisher(ctx, orgName, catalogName, settings, os.Stdout)
			return workflow()
		},
	}

	return cmd
}

func newCatalogsListCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:    ListCmd,
		Aliases: []string{ListAlias},
		Usage:   ListUsage,
		Flags: []cli.Flag{
			cli.StringFlag{Name: OrgFlag, Usage: OrgFlagUsage},
		},
		Action: func(c *cli.Context) error {
			orgName := common.NewStringIfNotEmpty(ctx.Config.Org, c.String(OrgFlagName))
			workflow := workflows.NewCatalogLister(ctx, orgName, os.Stdout)
			return workflow()
		},
	}

	return cmd
}

func newCatalogsShowCommand(ctx *common.Context) *cli.Command {
	cmd := &cli.Command{
		Name:      ShowCmd,
		Usage:     ShowUsage,
		ArgsUsage: CatalogArgUsage,
		Flags: []cli.Flag{
			cli.StringFlag{Name: OrgFlag, Usage: OrgFlagUsage},
		},
		Action: func(c *cli.Context) error {
			catalogName := c.Args().First()
			if len(catalogName) == 0 {
				cli.ShowCommandHelp(c, ShowCmd)
				return errors.New(NoCatalogValidation)
			}
			orgName := common.NewStringIfNotEmpty(ctx.Config.Org, c.String(OrgFlagName))
			workflow := workflows.NewCatalogViewer(ctx, orgName, catalogName, os.Stdout)
			return workflow()
		},
	}

	return cmd
}
