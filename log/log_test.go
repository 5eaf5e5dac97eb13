package log

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		opt     *Option
		wantErr bool
	}{
		{
			name: "console",
			opt:  &Option{Mode: "FULL", Level: "DEBUG"},
		},
		{
			name: "simple console",
			opt:  &Option{Mode: "SIMPLE", Level: "INFO", Sink: "CONSOLE"},
		},
		{
			name:    "illegal level",
			opt:     &Option{Mode: "FULL", Level: "VERBOSE"},
			wantErr: true,
		},
		{
			name:    "illegal mode",
			opt:     &Option{Mode: "FANCY", Level: "INFO"},
			wantErr: true,
		},
		{
			name:    "illegal sink",
			opt:     &Option{Mode: "FULL", Level: "INFO", Sink: "SOCKET"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.opt); (err != nil) != tt.wantErr {
				t.Errorf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_logs(t *testing.T) {
	if err := InitConsoleLog("FULL", "DEBUG"); err != nil {
		t.Fatal(err)
	}
	Debugf("count: %d", 1)
	Infof("count: %d", 1)
	Warnf("count: %d", 1)
	Errorf("count: %d", 1)
}
