package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dabingnn/QSanguosha/internal/config"
	"github.com/dabingnn/QSanguosha/internal/engine"
	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
	"github.com/dabingnn/QSanguosha/internal/orchestrators/general"
	generalmock "github.com/dabingnn/QSanguosha/internal/orchestrators/general/mock"
	"github.com/dabingnn/QSanguosha/internal/testutils"
	"github.com/dabingnn/QSanguosha/internal/translation"
	translationmock "github.com/dabingnn/QSanguosha/internal/translation/mock"
)

type CommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *generalmock.MockService
	store     *translationmock.MockStore
	out       *bytes.Buffer
	ctx       context.Context
	dataDir   string
	assetRoot string
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = generalmock.NewMockService(s.ctrl)
	s.store = translationmock.NewMockStore(s.ctrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	s.dataDir = s.T().TempDir()
	s.assetRoot = s.T().TempDir()
	s.writeFile(s.dataDir, "packages/standard.yaml", `
name: standard
skills:
  - name: rende
    description: Give away cards.
generals:
  - name: $liubei
    kingdom: shu
    hp: 4
    skills: [rende]
  - name: guanyu
    kingdom: shu
    hp: 4
`)
	s.writeFile(s.dataDir, "lang/zh_CN.yaml", `
locale: zh-CN
messages:
  liubei: 刘备
  rende: 仁德
  "~liubei": 这就是桃园吗？
`)
	s.writeFile(s.assetRoot, "audio/death/liubei.ogg", "")

	listIncludeHidden, listKingdom, listPackage = false, "", ""
	showJSONOutput, playWin, pushReplace = false, false, false
}

func (s *CommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CommandsTestSuite) writeFile(root, name, content string) {
	path := filepath.Join(root, filepath.FromSlash(name))
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
}

func (s *CommandsTestSuite) newConfig() *config.Config {
	return &config.Config{
		AssetRoot: s.assetRoot,
		DataDir:   s.dataDir,
		Locale:    "zh-CN",
		LogLevel:  "error",
	}
}

func (s *CommandsTestSuite) TestNewAppLoadsDataDirectory() {
	a, err := newApp(s.ctx, s.newConfig())
	s.Require().NoError(err)
	defer func() { s.NoError(a.Close()) }()

	s.Nil(a.store)
	s.Equal("zh-CN", a.catalog.Locale())

	out, err := a.generals.DescribeGeneral(s.ctx, &general.DescribeGeneralInput{Name: "liubei"})
	s.Require().NoError(err)
	s.Equal("刘备", out.Details.DisplayName)
	s.True(out.Details.Lord)
	s.Equal("<b>仁德</b>: Give away cards. <br/> <br/>", out.Details.SkillDescription)
	s.Equal("audio/death/liubei.ogg", out.Details.LastEffectPath)
	s.Equal(entities.TinyUnknownPath, out.Details.TinyIcon)
}

func (s *CommandsTestSuite) TestNewAppRejectsBrokenPackage() {
	s.writeFile(s.dataDir, "packages/wind.yaml", "name: wind\ngenerals:\n  - {name: xiahouyuan, hp: 4}\n")

	_, err := newApp(s.ctx, s.newConfig())
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestNewAppMergesSharedTranslations() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	store, err := translation.NewRedis(&translation.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = store.Save(s.ctx, translation.SaveInput{
		Locale:   "zh-CN",
		Messages: map[string]string{"guanyu": "关羽"},
	})
	s.Require().NoError(err)

	cfg := s.newConfig()
	cfg.RedisAddr = mr.Addr()

	a, err := newApp(s.ctx, cfg)
	s.Require().NoError(err)
	defer func() { s.NoError(a.Close()) }()

	s.NotNil(a.store)
	s.Equal("关羽", a.catalog.Translate("guanyu", ""))
	s.Equal("刘备", a.catalog.Translate("liubei", ""))
}

func (s *CommandsTestSuite) TestPushReplaceDropsStoredKeys() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	store, err := translation.NewRedis(&translation.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = store.Save(s.ctx, translation.SaveInput{
		Locale:   "zh-CN",
		Messages: map[string]string{"stale": "old"},
	})
	s.Require().NoError(err)

	cfg := s.newConfig()
	cfg.RedisAddr = mr.Addr()

	a, err := newApp(s.ctx, cfg)
	s.Require().NoError(err)
	defer func() { s.NoError(a.Close()) }()
	s.Equal("old", a.catalog.Translate("stale", ""))

	pushReplace = true
	s.Require().NoError(runPushTranslations(s.ctx, a.localCatalog, a.store, s.out, "zh-CN"))
	s.Contains(s.out.String(), "pushed 3 messages for zh-CN")

	out, err := store.Load(s.ctx, translation.LoadInput{Locale: "zh-CN"})
	s.Require().NoError(err)
	s.NotContains(out.Messages, "stale")
	s.Equal("刘备", out.Messages["liubei"])
	s.Len(out.Messages, 3)
}

func (s *CommandsTestSuite) TestNewAppToleratesUnreachableRedis() {
	_, mr := testutils.CreateTestRedisClient(s.T())
	cfg := s.newConfig()
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	a, err := newApp(s.ctx, cfg)
	s.Require().NoError(err)
	s.NoError(a.Close())
}

func (s *CommandsTestSuite) TestRunListGenerals() {
	pkg := entities.NewPackage("standard", nil)
	liubei, err := pkg.NewGeneral("$liubei", "shu", 4, true, false, false)
	s.Require().NoError(err)
	listKingdom = "shu"

	s.service.EXPECT().
		ListGenerals(s.ctx, &general.ListGeneralsInput{Kingdom: "shu"}).
		Return(&general.ListGeneralsOutput{Generals: []*entities.General{liubei}}, nil)

	s.Require().NoError(runListGenerals(s.ctx, s.service, s.out))
	s.Contains(s.out.String(), "liubei")
	s.Contains(s.out.String(), "standard*")
	s.Contains(s.out.String(), "1 generals")
}

func (s *CommandsTestSuite) TestRunShowGeneral() {
	s.service.EXPECT().
		DescribeGeneral(s.ctx, &general.DescribeGeneralInput{Name: "liubei"}).
		Return(&general.DescribeGeneralOutput{Details: &general.Details{
			Name:        "liubei",
			DisplayName: "刘备",
			Lord:        true,
			Kingdom:     "shu",
			MaxHP:       4,
			Skills:      []general.SkillDetails{{Name: "rende", DisplayName: "仁德", Description: "Give away\ncards."}},
			LastWord:    "这就是桃园吗？",
			CardImage:   "images/generals/card/liubei.jpg",
		}}, nil)

	s.Require().NoError(runShowGeneral(s.ctx, s.service, s.out, "liubei"))
	output := s.out.String()
	s.Contains(output, "刘备 (lord) [liubei]")
	s.Contains(output, "仁德: Give away cards.")
	s.Contains(output, "Last word: 这就是桃园吗？")
	s.NotContains(output, "Designer")
	s.Contains(output, "Card: images/generals/card/liubei.jpg")
}

func (s *CommandsTestSuite) TestRunShowGeneralJSON() {
	showJSONOutput = true
	s.service.EXPECT().
		DescribeGeneral(s.ctx, gomock.Any()).
		Return(&general.DescribeGeneralOutput{Details: &general.Details{Name: "liubei"}}, nil)

	s.Require().NoError(runShowGeneral(s.ctx, s.service, s.out, "liubei"))
	s.Contains(s.out.String(), `"Name": "liubei"`)
}

func (s *CommandsTestSuite) TestRunShowGeneralNotFound() {
	s.service.EXPECT().
		DescribeGeneral(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("general nobody not found"))

	err := runShowGeneral(s.ctx, s.service, s.out, "nobody")
	s.Require().Error(err)
	s.Equal(3, errors.GetCode(err).ExitCode())
}

func (s *CommandsTestSuite) TestRunPlayWord() {
	s.service.EXPECT().
		PlayWord(s.ctx, &general.PlayWordInput{Name: "liubei", Kind: general.WordWin}).
		Return(&general.PlayWordOutput{Text: "Victory"}, nil)

	s.Require().NoError(runPlayWord(s.ctx, s.service, s.out, "liubei", general.WordWin))
	s.Contains(s.out.String(), "no win audio for liubei")
	s.Contains(s.out.String(), `"Victory"`)
}

func (s *CommandsTestSuite) TestRunDrawGenerals() {
	pkg := entities.NewPackage("standard", nil)
	guanyu, err := pkg.NewGeneral("guanyu", "shu", 4, true, false, false)
	s.Require().NoError(err)

	s.service.EXPECT().
		DrawGenerals(s.ctx, &general.DrawGeneralsInput{Count: 1, Exclude: []string{"liubei"}}).
		Return(&general.DrawGeneralsOutput{Generals: []*entities.General{guanyu}}, nil)

	s.Require().NoError(runDrawGenerals(s.ctx, s.service, s.out, 1, []string{"liubei"}))
	s.Contains(s.out.String(), "guanyu")
}

func (s *CommandsTestSuite) TestRunTriggerGeneral() {
	eng, err := engine.New(&engine.Config{EventBus: events.NewBus(), DiceRoller: dice.DefaultRoller})
	s.Require().NoError(err)

	var fired []string
	s.Require().NoError(eng.AddSkill(entities.NewTriggerSkill(entities.TriggerSkillConfig{
		Name:     "fankui",
		Events:   []string{"damaged"},
		Priority: 2,
		OnTrigger: func(_ context.Context, event events.Event) error {
			fired = append(fired, event.Type())
			return nil
		},
	})))
	pkg, err := eng.NewPackage("standard")
	s.Require().NoError(err)
	simayi, err := pkg.NewGeneral("simayi", "wei", 3, true, false, false)
	s.Require().NoError(err)
	simayi.AddSkillName("fankui")

	s.Require().NoError(runTriggerGeneral(s.ctx, eng, s.out, "simayi", "damaged"))
	s.Equal([]string{"damaged"}, fired)
	s.Contains(s.out.String(), "bound 1 subscriptions for simayi")
	s.Contains(s.out.String(), "fankui (priority 2)")

	// Subscriptions are released, so the next run binds again and fires once
	s.Require().NoError(runTriggerGeneral(s.ctx, eng, s.out, "simayi", "lost_hp"))
	s.Equal([]string{"damaged"}, fired)

	err = runTriggerGeneral(s.ctx, eng, s.out, "nobody", "damaged")
	s.True(errors.IsNotFound(err))
}

func (s *CommandsTestSuite) TestRunPushTranslations() {
	catalog, err := translation.NewCatalog(&translation.CatalogConfig{Locale: "zh-CN"})
	s.Require().NoError(err)
	s.Require().NoError(catalog.Merge("zh-CN", map[string]string{"liubei": "刘备"}))

	s.store.EXPECT().
		Save(s.ctx, translation.SaveInput{Locale: "zh-CN", Messages: map[string]string{"liubei": "刘备"}}).
		Return(&translation.SaveOutput{Saved: 1}, nil)

	s.Require().NoError(runPushTranslations(s.ctx, catalog, s.store, s.out, "zh-cn"))
	s.Contains(s.out.String(), "pushed 1 messages for zh-CN")
}

func (s *CommandsTestSuite) TestRunPushTranslationsErrors() {
	catalog, err := translation.NewCatalog(&translation.CatalogConfig{Locale: "en"})
	s.Require().NoError(err)

	err = runPushTranslations(s.ctx, catalog, nil, s.out, "en")
	s.True(errors.IsFailedPrecondition(err))

	err = runPushTranslations(s.ctx, catalog, s.store, s.out, "fr")
	s.True(errors.IsNotFound(err))

	err = runPushTranslations(s.ctx, catalog, s.store, s.out, "!!")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandsTestSuite) TestRunListTranslations() {
	s.store.EXPECT().
		ListLocales(s.ctx, translation.ListLocalesInput{}).
		Return(&translation.ListLocalesOutput{Locales: []string{"en", "zh-CN"}}, nil)

	s.Require().NoError(runListTranslations(s.ctx, s.store, s.out))
	s.Equal("en\nzh-CN\n", s.out.String())
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}
