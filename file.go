package palsav

import "os"

// ReadFile reads and decodes the container stored at name.
func ReadFile(name string) (*Container, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// FromPlainFile compresses the raw payload stored at name into a new container.
func FromPlainFile(name string, mode Mode) (*Container, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return New(data, mode)
}

// WriteFile writes the encoded container to name, creating or truncating it.
func (c *Container) WriteFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(f)
	return err
}
