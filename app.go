package skyisles

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

type systemFn any

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App runs its systems stage by stage once per Tick. Systems are plain functions
// whose pointer parameters are filled from the registered resources.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	logger    Logger
	quit      bool
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) Logger() Logger { return app.logger }

// Resource returns the registered *T, or nil.
func Resource[T any](app *App) *T {
	r, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return r.(*T)
}

// Tick advances one frame.
func (app *App) Tick(now time.Time) {
	if t := Resource[Time](app); t != nil {
		t.advance(now)
	}
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

// Run ticks until a system calls Commands.Quit.
func (app *App) Run() {
	app.logger.Infof("running %d stages", len(app.stages))
	for !app.quit {
		app.Tick(time.Now())
	}
}

func (app *App) Quitting() bool { return app.quit }

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("system %s: parameter %s is not a pointer", systemName(systemValue), argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				systemName(systemValue),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			app.logger.Errorf("%s", msg)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func systemName(v reflect.Value) string {
	return runtime.FuncForPC(v.Pointer()).Name()
}
