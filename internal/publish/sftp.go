package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// DefaultSFTPTimeout bounds the SSH handshake.
const DefaultSFTPTimeout = 20 * time.Second

// ErrSFTPConfig is returned when host, user or password is missing.
var ErrSFTPConfig = errors.New("sftp: missing host, user or password")

// SFTPConfig locates the remote copy.
type SFTPConfig struct {
	Host                  string `yaml:"host" env:"SFTP_HOST"`
	Port                  int    `yaml:"port" env:"SFTP_PORT" env-default:"22"`
	User                  string `yaml:"user" env:"SFTP_USER"`
	Pass                  string `yaml:"-" env:"SFTP_PASS"`
	RemoteDir             string `yaml:"remote_dir" env:"SFTP_REMOTE_DIR" env-default:"/"`
	InsecureIgnoreHostKey bool   `yaml:"insecure_ignore_host_key"`
	KnownHostsKey         string `yaml:"known_host_key"`
}

// Enabled reports whether an upload target is configured.
func (c SFTPConfig) Enabled() bool {
	return c.Host != ""
}

// Uploader copies a local file to the remote public location.
type Uploader interface {
	Upload(ctx context.Context, localPath, remoteName string) error
}

// SFTPUploader uploads over SFTP with password authentication.
type SFTPUploader struct {
	cfg SFTPConfig
}

// NewSFTPUploader validates cfg and fills in defaults.
func NewSFTPUploader(cfg SFTPConfig) (*SFTPUploader, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return nil, ErrSFTPConfig
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}
	if !cfg.InsecureIgnoreHostKey && cfg.KnownHostsKey == "" {
		return nil, errors.New("sftp: known_host_key is required unless insecure_ignore_host_key is set")
	}
	return &SFTPUploader{cfg: cfg}, nil
}

func (u *SFTPUploader) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if u.cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(u.cfg.KnownHostsKey))
	if err != nil {
		return nil, fmt.Errorf("sftp: parsing host key: %w", err)
	}
	return ssh.FixedHostKey(key), nil
}

// Upload dials the server, honoring ctx during the handshake, and copies
// localPath to remoteName inside the configured directory.
func (u *SFTPUploader) Upload(ctx context.Context, localPath, remoteName string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sftp: dial canceled: %w", err)
	}

	cb, err := u.hostKeyCallback()
	if err != nil {
		return err
	}

	sshCfg := &ssh.ClientConfig{
		User:            u.cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(u.cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         DefaultSFTPTimeout,
	}
	addr := fmt.Sprintf("%s:%d", u.cfg.Host, u.cfg.Port)

	type dialResult struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialResult, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialResult{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		// Close a connection that completes after cancellation.
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close() // nolint:errcheck
			}
		}()
		return fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("sftp: dial %s: %w", addr, r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close() // nolint:errcheck

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer client.Close() // nolint:errcheck

	return copyToRemote(client, u.cfg.RemoteDir, localPath, remoteName)
}

func copyToRemote(client *sftp.Client, remoteDir, localPath, remoteName string) error {
	if err := client.MkdirAll(remoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", remoteDir, err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close() // nolint:errcheck

	remotePath := path.Join(remoteDir, remoteName)
	dst, err := client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create %s: %w", remotePath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close() // nolint:errcheck
		return fmt.Errorf("sftp: upload %s: %w", remotePath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close %s: %w", remotePath, err)
	}
	return nil
}
