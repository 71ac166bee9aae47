// Package main provides a CLI tool that resolves a single task check.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/traveller/internal/config"
	"github.com/cory-johannsen/traveller/internal/game/attribute"
	"github.com/cory-johannsen/traveller/internal/game/character"
	"github.com/cory-johannsen/traveller/internal/game/check"
	"github.com/cory-johannsen/traveller/internal/game/dice"
	"github.com/cory-johannsen/traveller/internal/game/ruleset"
	"github.com/cory-johannsen/traveller/internal/game/skill"
	"github.com/cory-johannsen/traveller/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	templateID := flag.String("template", "", "stat-block template ID to check with")
	attrName := flag.String("attribute", "", "attribute contributing its bonus, e.g. dexterity or DEX")
	skillName := flag.String("skill", "", "skill contributing its DM, e.g. melee_blades")
	extraDM := flag.Int("dm", 0, "additional situational dice modifier")
	difficultyName := flag.String("difficulty", "average", "difficulty tier: simple .. impossible")
	boon := flag.Bool("boon", false, "roll with a boon (3d6, drop lowest)")
	bane := flag.Bool("bane", false, "roll with a bane (3d6, drop highest)")
	flag.Parse()

	if *boon && *bane {
		fmt.Fprintln(os.Stderr, "usage: -boon and -bane are mutually exclusive")
		os.Exit(2)
	}
	if (*attrName != "" || *skillName != "") && *templateID == "" {
		fmt.Fprintln(os.Stderr, "usage: -attribute and -skill require -template")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	difficulty, err := check.ParseDifficulty(*difficultyName)
	if err != nil {
		logger.Fatal("parsing difficulty", zap.Error(err))
	}
	bb := check.None
	switch {
	case *boon:
		bb = check.Boon
	case *bane:
		bb = check.Bane
	}

	src, err := dice.NewSource(cfg.Dice.Source, cfg.Dice.Seed)
	if err != nil {
		logger.Fatal("creating dice source", zap.Error(err))
	}
	checker := check.NewChecker(dice.NewLoggedRoller(src, logger), logger)

	dm := *extraDM
	if *templateID != "" {
		c, err := loadCharacter(cfg.Content.TemplatesDir, *templateID)
		if err != nil {
			logger.Fatal("loading character", zap.Error(err))
		}
		if *attrName != "" {
			attr, err := attribute.ParseKind(*attrName)
			if err != nil {
				logger.Fatal("parsing attribute", zap.Error(err))
			}
			dm += c.AttributeDM(attr)
		}
		if *skillName != "" {
			sk, err := skill.ParseKind(*skillName)
			if err != nil {
				logger.Fatal("parsing skill", zap.Error(err))
			}
			dm += c.Skills.DM(sk)
		}
		logger.Info("character loaded",
			zap.String("id", c.ID.String()),
			zap.String("name", c.Name),
			zap.Int("dm", dm),
		)
	}

	res := checker.Check(dm, difficulty, bb)
	fmt.Fprintln(os.Stdout, res.String())
}

func loadCharacter(dir, id string) (*character.Character, error) {
	templates, err := ruleset.LoadTemplates(dir)
	if err != nil {
		return nil, err
	}
	reg := ruleset.NewTemplateRegistry()
	for _, t := range templates {
		reg.Register(t)
	}
	tmpl, ok := reg.Template(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q (known: %v)", id, reg.IDs())
	}
	return character.FromTemplate(tmpl.Name, tmpl)
}
