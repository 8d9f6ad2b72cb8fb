package skyisles

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type MockModule2 struct {
	installed bool
}

func (m *MockModule2) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_Defaults(t *testing.T) {
	app := NewAppBuilder().Build()

	if len(app.stages) != 4 {
		t.Errorf("Expected 4 default stages, got %v", len(app.stages))
	}
	if app.Logger() == nil {
		t.Errorf("Expected a default logger")
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
}

func TestAppBuilder_Build(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	mockModule2 := &MockModule2{}
	builder.UseModule(mockModule, mockModule2)

	builder.Build()

	if !mockModule.installed {
		t.Errorf("Expected mockModule to be installed")
	}
	if !mockModule2.installed {
		t.Errorf("Expected mockModule2 to be installed")
	}
}
