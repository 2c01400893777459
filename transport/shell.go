/*
 * MIT License
 *
 * Copyright (c) 2026 jvmtui contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package transport

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"

	jerrors "github.com/jvmtui/core/errors"
)

// ShellAuth selects the private key ShellExecutor authenticates with:
// KeyPath names the key file (when empty, the first of ~/.ssh/id_ed25519
// and ~/.ssh/id_rsa that exists is used), and Passphrase, when set,
// decrypts that key. Only public-key authentication is offered.
type ShellAuth struct {
	KeyPath    string
	Passphrase string
}

// defaultKeyPaths is tried, in order, when Auth.KeyPath is empty.
var defaultKeyPaths = []string{"id_ed25519", "id_rsa"}

// ShellExecutor holds an authenticated encrypted-shell session to a
// remote host and executes the same argument vector LocalExecutor
// would, remotely.
type ShellExecutor struct {
	Host     string
	User     string
	Auth     ShellAuth
	TargetID int
	ToolName string

	mu     sync.Mutex
	client *ssh.Client
}

// NewShellExecutor validates targetID and returns an executor that
// lazily dials on first Execute call.
func NewShellExecutor(host, user, toolName string, auth ShellAuth, targetID int) (*ShellExecutor, error) {
	if !ValidTargetID(targetID) {
		return nil, jerrors.New(jerrors.ToolsUnavailable, "target id must be a positive integer below the platform pid ceiling")
	}
	return &ShellExecutor{Host: host, User: user, Auth: auth, TargetID: targetID, ToolName: toolName}, nil
}

func resolveKeyPath(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range defaultKeyPaths {
		p := filepath.Join(home, ".ssh", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (s *ShellExecutor) signer() (ssh.Signer, error) {
	path := resolveKeyPath(s.Auth.KeyPath)
	if path == "" {
		return nil, jerrors.New(jerrors.AuthFailed, "no usable private key found")
	}

	key, err := os.ReadFile(path)
	if err != nil {
		return nil, jerrors.Wrap(jerrors.AuthFailed, "read private key", err)
	}

	if s.Auth.Passphrase != "" {
		signer, err := ssh.ParsePrivateKeyWithPassphrase(key, []byte(s.Auth.Passphrase))
		if err != nil {
			return nil, jerrors.Wrap(jerrors.AuthFailed, "decrypt private key", err)
		}
		return signer, nil
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, jerrors.Wrap(jerrors.AuthFailed, "parse private key", err)
	}
	return signer, nil
}

func (s *ShellExecutor) dial(ctx context.Context) (*ssh.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	signer, err := s.signer()
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            s.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	host := s.Host
	if !strings.Contains(host, ":") {
		host = host + ":22"
	}

	client, err := ssh.Dial("tcp", host, cfg)
	if err != nil {
		return nil, jerrors.Wrap(jerrors.AuthFailed, "ssh dial/handshake failed", err)
	}

	s.client = client
	return client, nil
}

// Execute opens a new session on the authenticated connection, runs
// the argv-equivalent command line remotely, captures stdout, and
// closes the channel.
func (s *ShellExecutor) Execute(ctx context.Context, operation string, args []string) ([]byte, error) {
	client, err := s.dial(ctx)
	if err != nil {
		return nil, err
	}

	session, err := client.NewSession()
	if err != nil {
		return nil, jerrors.Wrap(jerrors.Transport, "open ssh session", err)
	}
	defer session.Close()

	done := make(chan error, 1)
	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	cmdLine := shellQuoteArgv(append([]string{s.ToolName, strconv.Itoa(s.TargetID), operation}, args...))

	go func() {
		done <- session.Run(cmdLine)
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return nil, jerrors.Wrap(jerrors.Timeout, "remote diagnostic deadline exceeded", ctx.Err())
	case err := <-done:
		if err != nil {
			return nil, jerrors.Wrap(jerrors.Transport, "remote diagnostic failed: "+stderr.String(), err)
		}
		return stdout.Bytes(), nil
	}
}

// Close tears down the underlying connection, if one was dialed.
func (s *ShellExecutor) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func shellQuoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = fmt.Sprintf("'%s'", strings.ReplaceAll(a, "'", `'\''`))
	}
	return strings.Join(quoted, " ")
}
