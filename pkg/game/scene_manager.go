package game

import (
	"log"
	"time"

	"github.com/gonewx/fab/pkg/animation"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// HeroFlightDuration 跨场景过渡的飞行时长
const HeroFlightDuration = 300 * time.Millisecond

// SceneFactory 场景工厂函数类型
// 用于按 ID 创建场景，避免循环依赖
type SceneFactory func(sceneID string) Scene

// heroFlight 一个过渡元素从旧场景位置飞到新场景位置
type heroFlight struct {
	from Hero
	to   Hero
}

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 当新旧场景都实现 HeroSource 时，Tag 相同的元素在切换时从旧位置飞到新位置，
// 飞行期间新场景中的同名元素被隐藏。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory

	scheduler *animation.Scheduler
	flight    *animation.ProgressDriver
	flights   []heroFlight
	target    HeroSource
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	scheduler := animation.NewScheduler()
	return &SceneManager{
		scheduler: scheduler,
		flight:    animation.NewProgressDriver(scheduler, HeroFlightDuration, utils.FastOutSlowIn, utils.FastOutSlowIn),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
// 旧场景保持存活，可以再次切换回去。
func (sm *SceneManager) SwitchTo(scene Scene) {
	previous := sm.currentScene
	sm.finishFlights()

	sm.currentScene = scene
	sm.startFlights(previous, scene)
}

// Replace 切换到新场景并释放旧场景（旧场景实现 Disposable 时）
func (sm *SceneManager) Replace(scene Scene) {
	previous := sm.currentScene
	sm.SwitchTo(scene)

	if disposable, ok := previous.(Disposable); ok && previous != scene {
		disposable.Dispose()
	}
}

// LoadScene 通过工厂创建并切换到指定场景
func (sm *SceneManager) LoadScene(sceneID string) {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(sceneID)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", sceneID)
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 成功切换到场景: %s", sceneID)
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// IsTransitioning 是否有过渡元素正在飞行
func (sm *SceneManager) IsTransitioning() bool {
	return len(sm.flights) > 0
}

// startFlights 配对新旧场景中的过渡元素并开始飞行
func (sm *SceneManager) startFlights(from, to Scene) {
	source, ok := from.(HeroSource)
	if !ok {
		return
	}
	target, ok := to.(HeroSource)
	if !ok {
		return
	}

	destinations := make(map[string]Hero)
	for _, hero := range target.Heroes() {
		destinations[hero.Tag] = hero
	}

	for _, hero := range source.Heroes() {
		dest, ok := destinations[hero.Tag]
		if !ok {
			continue
		}
		sm.flights = append(sm.flights, heroFlight{from: hero, to: dest})
		target.SetHeroHidden(hero.Tag, true)
	}
	if len(sm.flights) == 0 {
		return
	}

	sm.target = target
	sm.flight.SetValue(0)
	sm.flight.Forward().Then(sm.finishFlights)
	log.Printf("[SceneManager] 开始过渡: %d 个元素", len(sm.flights))
}

// finishFlights 结束飞行并恢复新场景中被隐藏的元素
func (sm *SceneManager) finishFlights() {
	if sm.target != nil {
		for _, f := range sm.flights {
			sm.target.SetHeroHidden(f.to.Tag, false)
		}
	}
	sm.flights = nil
	sm.target = nil
}

// Update updates the currently active scene and advances hero flights.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.scheduler.Step(deltaTime)
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene, then the flying heroes on top.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}

	t := sm.flight.Value()
	for _, f := range sm.flights {
		x := utils.Lerp(f.from.X, f.to.X, t)
		y := utils.Lerp(f.from.Y, f.to.Y, t)
		size := utils.Lerp(f.from.Size, f.to.Size, t)

		// 旧快照淡出，新快照淡入
		drawHero(screen, f.from.Image, x, y, size, 1-t)
		drawHero(screen, f.to.Image, x, y, size, t)
	}
}

// drawHero 把快照缩放到 size 绘制在 (x, y)
func drawHero(screen, img *ebiten.Image, x, y, size, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	w := img.Bounds().Dx()
	if w == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	scale := size / float64(w)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
