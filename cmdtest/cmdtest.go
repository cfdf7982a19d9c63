// Package cmdtest runs YAML-described CLI test cases against in-process
// commands registered as func() int.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestData 对应 YAML 文件中的单个测试用例结构
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`  // 对应 Register 的 cmd
	Args        []string          `yaml:"args"` // 参数数组，规避引号问题
	Env         map[string]string `yaml:"env"`  // 环境变量
	Expect      struct {
		Stdout   string `yaml:"stdout"`
		Stderr   string `yaml:"stderr"`
		ExitCode int    `yaml:"exitCode"`
	} `yaml:"expect"`
}

// TestGroup 对应一个 YAML 文件
type TestGroup struct {
	Name  string     // 文件名
	Tests []TestData `yaml:"tests"`
}

// TestSuite 测试套件
type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
}

// Read 读取指定目录下的所有 .yaml/.yml 文件
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var group TestGroup
		if err := yaml.Unmarshal(content, &group); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if len(group.Tests) == 0 {
			return fmt.Errorf("%s: missing or empty 'tests' sequence", path)
		}
		group.Name = filepath.Base(path)

		suite.groups = append(suite.groups, &group)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return suite, nil
}

// Register 注册命令行实现
// cmd: 对应 YAML 中的 cmd 字段
// run: 执行逻辑，返回 exit code
func (s *TestSuite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run 执行测试
// 传入 *testing.T 以便集成到 go test 中
func (s *TestSuite) Run(t *testing.T) {
	for _, group := range s.groups {
		g := group
		t.Run(g.Name, func(t *testing.T) {
			for i := range g.Tests {
				test := &g.Tests[i]
				name := test.Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				idx := i
				t.Run(name, func(t *testing.T) {
					s.runSingleTest(t, g, idx)
				})
			}
		})
	}
}

// runSingleTest 执行单个测试用例
func (s *TestSuite) runSingleTest(t *testing.T, group *TestGroup, idx int) {
	test := &group.Tests[idx]
	runFunc, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("Command '%s' not registered", test.Cmd)
	}

	// 保存现场
	oldArgs := os.Args
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	type envSnapshot struct {
		value  string
		exists bool
	}
	oldEnv := make(map[string]envSnapshot)
	for k := range test.Env {
		val, exists := os.LookupEnv(k)
		oldEnv[k] = envSnapshot{value: val, exists: exists}
	}

	// 设置现场
	os.Args = append([]string{test.Cmd}, test.Args...)
	for k, v := range test.Env {
		os.Setenv(k, v)
	}

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var exitCode int
	done := make(chan struct{}, 2)
	var gotStdout, gotStderr string

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		gotStdout = buf.String()
		done <- struct{}{}
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		gotStderr = buf.String()
		done <- struct{}{}
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				exitCode = -1
			}
		}()
		exitCode = runFunc()
	}()

	// 恢复现场
	_ = wOut.Close()
	_ = wErr.Close()
	<-done
	<-done
	_ = rOut.Close()
	_ = rErr.Close()

	os.Stdout = oldStdout
	os.Stderr = oldStderr
	os.Args = oldArgs
	for k, snap := range oldEnv {
		if snap.exists {
			os.Setenv(k, snap.value)
		} else {
			os.Unsetenv(k)
		}
	}

	if exitCode != test.Expect.ExitCode {
		t.Errorf("ExitCode mismatch:\nExpected: %d\nActual:   %d", test.Expect.ExitCode, exitCode)
	}
	if gotStdout != test.Expect.Stdout {
		t.Errorf("Stdout mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stdout, gotStdout)
	}
	if gotStderr != test.Expect.Stderr {
		t.Errorf("Stderr mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stderr, gotStderr)
	}
}
