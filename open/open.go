// Package open launches exported gradient files with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/huestep/huestep/constant"
)

// Start opens path with app, or with the default handler when app is empty.
// It does not wait for the launched process.
func Start(path, app string) error {
	cmd, err := command(runtime.GOOS, path, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, path, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case constant.Windows:
			return exec.Command("cmd", "/C", "start", "", app, path), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, path), nil
		case constant.Linux, constant.Android:
			return exec.Command(app, path), nil
		}
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), nil
	case constant.Darwin:
		return exec.Command("open", path), nil
	case constant.Linux:
		return exec.Command("xdg-open", path), nil
	case constant.Android:
		return exec.Command("termux-open", path), nil
	}
	return nil, fmt.Errorf("unsupported OS: %s", goos)
}
