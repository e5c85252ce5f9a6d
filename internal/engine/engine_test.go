package engine_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/dabingnn/QSanguosha/internal/engine"
	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

// scriptedRoller returns the queued rolls in order and records the sizes asked for
type scriptedRoller struct {
	rolls []int
	sizes []int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if len(r.rolls) == 0 {
		return 1, nil
	}
	roll := r.rolls[0]
	r.rolls = r.rolls[1:]
	return roll, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		roll, _ := r.Roll(size)
		out[i] = roll
	}
	return out, nil
}

type EngineTestSuite struct {
	suite.Suite
	roller *scriptedRoller
	engine *engine.Engine
	ctx    context.Context
}

func (s *EngineTestSuite) SetupTest() {
	s.roller = &scriptedRoller{}

	eng, err := engine.New(&engine.Config{
		EventBus:   events.NewBus(),
		DiceRoller: s.roller,
	})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *EngineTestSuite) installStandard() *entities.Package {
	pkg := entities.NewPackage("standard", s.engine.Env())
	jianxiong := entities.NewSkill("jianxiong", "Obtain the card that damaged you.")
	pkg.AddSkill(jianxiong)
	pkg.AddSkill(entities.NewSkill("rende", "Give away cards."))

	caocao, err := pkg.NewGeneral("$caocao", "wei", 4, true, false, false)
	s.Require().NoError(err)
	caocao.AddSkill(jianxiong)

	_, err = pkg.NewGeneral("liubei", "shu", 4, true, false, false)
	s.Require().NoError(err)
	_, err = pkg.NewGeneral("sunquan", "wu", 4, true, false, false)
	s.Require().NoError(err)
	_, err = pkg.NewGeneral("shenlvbu", "god", 8, true, true, false)
	s.Require().NoError(err)
	_, err = pkg.NewGeneral("anjiang", "god", 4, true, false, true)
	s.Require().NoError(err)

	s.Require().NoError(s.engine.AddPackage(pkg))
	return pkg
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := engine.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{DiceRoller: s.roller})
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{EventBus: events.NewBus()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestEnvResolvesThroughEngine() {
	env := s.engine.Env()
	s.Require().NotNil(env)
	s.Equal(s.engine, env.Skills)
}

func (s *EngineTestSuite) TestSkillRegistry() {
	rende := entities.NewSkill("rende", "Give away cards.")
	s.Require().NoError(s.engine.AddSkill(rende))

	s.Equal(rende, s.engine.GetSkill("rende"))
	s.Nil(s.engine.GetSkill("unknown"))
	// A plain skill is not a trigger skill
	s.Nil(s.engine.GetTriggerSkill("rende"))

	// Registering the same object twice is a no-op
	s.NoError(s.engine.AddSkill(rende))

	err := s.engine.AddSkill(entities.NewSkill("rende", "another"))
	s.True(errors.IsAlreadyExists(err))

	s.True(errors.IsInvalidArgument(s.engine.AddSkill(nil)))
	s.True(errors.IsInvalidArgument(s.engine.AddSkill(entities.NewSkill("", ""))))
}

func (s *EngineTestSuite) TestGetTriggerSkill() {
	fankui := entities.NewTriggerSkill(entities.TriggerSkillConfig{
		Name:   "fankui",
		Events: []string{"damaged"},
	})
	s.Require().NoError(s.engine.AddSkill(fankui))

	s.Equal(fankui, s.engine.GetTriggerSkill("fankui"))
	s.Nil(s.engine.GetTriggerSkill("unknown"))
}

func (s *EngineTestSuite) TestAddPackageRegistersSkillsAndGenerals() {
	s.installStandard()

	s.NotNil(s.engine.GetSkill("jianxiong"))

	caocao, ok := s.engine.General("caocao")
	s.Require().True(ok)
	s.True(caocao.IsLord())
	s.Equal("standard", caocao.PackageName())

	_, ok = s.engine.General("$caocao")
	s.False(ok)

	s.Len(s.engine.Generals(), 5)
	s.Equal("caocao", s.engine.Generals()[0].Name())

	pkg, ok := s.engine.Package("standard")
	s.True(ok)
	s.Equal("standard", pkg.Name())
	s.Len(s.engine.Packages(), 1)
}

func (s *EngineTestSuite) TestAddPackageDuplicateName() {
	s.installStandard()

	_, err := s.engine.NewPackage("standard")
	s.True(errors.IsAlreadyExists(err))
}

func (s *EngineTestSuite) TestAddPackageCollisionInstallsNothing() {
	s.installStandard()

	wind := entities.NewPackage("wind", s.engine.Env())
	wind.AddSkill(entities.NewSkill("liegong", "Unavoidable slash."))
	_, err := wind.NewGeneral("liubei", "shu", 4, true, false, false)
	s.Require().NoError(err)

	err = s.engine.AddPackage(wind)
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal("liubei", errors.GetMeta(err)["general"])

	s.Nil(s.engine.GetSkill("liegong"))
	_, ok := s.engine.Package("wind")
	s.False(ok)
}

func (s *EngineTestSuite) TestAddPackageValidation() {
	s.True(errors.IsInvalidArgument(s.engine.AddPackage(nil)))
	s.True(errors.IsInvalidArgument(s.engine.AddPackage(entities.NewPackage("", nil))))
}

func (s *EngineTestSuite) TestGeneralAddedAfterInstall() {
	pkg, err := s.engine.NewPackage("sp")
	s.Require().NoError(err)

	_, err = pkg.NewGeneral("sp_diaochan", "qun", 3, false, false, false)
	s.Require().NoError(err)

	general, ok := s.engine.General("sp_diaochan")
	s.Require().True(ok)
	s.True(general.IsFemale())
}

func (s *EngineTestSuite) TestReferencedSkillsResolveThroughRegistry() {
	s.installStandard()

	liubei, ok := s.engine.General("liubei")
	s.Require().True(ok)
	liubei.AddSkillName("rende")
	liubei.AddSkillName("unknown")

	visible := liubei.VisibleSkillList()
	s.Require().Len(visible, 1)
	s.Equal("rende", visible[0].Name())
}

func (s *EngineTestSuite) TestBindTriggersAndPublish() {
	var fired []string
	fankui := entities.NewTriggerSkill(entities.TriggerSkillConfig{
		Name:     "fankui",
		Events:   []string{"damaged", "lost_hp"},
		Priority: 2,
		OnTrigger: func(_ context.Context, event events.Event) error {
			fired = append(fired, event.Type())
			return nil
		},
	})
	s.Require().NoError(s.engine.AddSkill(fankui))

	pkg, err := s.engine.NewPackage("standard")
	s.Require().NoError(err)
	simayi, err := pkg.NewGeneral("simayi", "wei", 3, true, false, false)
	s.Require().NoError(err)
	simayi.AddSkillName("fankui")

	ids, err := s.engine.BindTriggers(simayi)
	s.Require().NoError(err)
	s.Len(ids, 2)

	s.Require().NoError(s.engine.Publish(s.ctx, events.NewGameEvent("damaged", simayi, nil)))
	s.Equal([]string{"damaged"}, fired)

	_, err = s.engine.BindTriggers(simayi)
	s.True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.engine.UnbindTriggers(simayi))
	s.Require().NoError(s.engine.Publish(s.ctx, events.NewGameEvent("damaged", simayi, nil)))
	s.Equal([]string{"damaged"}, fired)

	s.True(errors.IsNotFound(s.engine.UnbindTriggers(simayi)))
}

func (s *EngineTestSuite) TestBindTriggersWithoutTriggerSkills() {
	s.installStandard()
	caocao, _ := s.engine.General("caocao")

	ids, err := s.engine.BindTriggers(caocao)
	s.Require().NoError(err)
	s.Empty(ids)

	_, err = s.engine.BindTriggers(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestPublishNilEvent() {
	s.True(errors.IsInvalidArgument(s.engine.Publish(s.ctx, nil)))
}

func (s *EngineTestSuite) TestDrawGeneralsSkipsHiddenAndExcluded() {
	s.installStandard()
	// Pool after exclusion: caocao, sunquan
	s.roller.rolls = []int{2, 1}

	drawn, err := s.engine.DrawGenerals(2, []string{"liubei"})
	s.Require().NoError(err)
	s.Require().Len(drawn, 2)
	s.Equal("sunquan", drawn[0].Name())
	s.Equal("caocao", drawn[1].Name())
	s.Equal([]int{2, 1}, s.roller.sizes)
}

func (s *EngineTestSuite) TestDrawGeneralsTooMany() {
	s.installStandard()

	_, err := s.engine.DrawGenerals(4, nil)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(3, errors.GetMeta(err)["available"])
}

func (s *EngineTestSuite) TestDrawGeneralsInvalidCount() {
	_, err := s.engine.DrawGenerals(0, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestDrawGeneralsRollOutOfRange() {
	s.installStandard()
	s.roller.rolls = []int{9}

	_, err := s.engine.DrawGenerals(1, nil)
	s.True(errors.IsInternal(err))
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
