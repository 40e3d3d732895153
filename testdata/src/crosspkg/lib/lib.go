// Package lib declares marked functions used by another package.
package lib

type Client struct{}

//retval:mustuse
func New() *Client {
	return &Client{}
}

//retval:mustuse
func (c *Client) Do(req string) error {
	return nil
}

func (c *Client) Close() error {
	return nil
}
