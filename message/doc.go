// Package message builds RFC 5322/MIME messages and serializes them to
// canonical wire bytes.
//
// A message is a tree of Part values: a Leaf carries body content directly,
// a Multipart carries nested Parts separated by a boundary. Build a tree out
// of NewInline, NewAttachment, MultipartMixed, and MultipartAlternative,
// wrap it in a Message, and call WriteTo to serialize it.
//
//	env := message.DefaultEnvironment()
//	body := message.NewInline("text/plain; charset=utf-8", "hello there")
//	msg := message.New(env, body)
//	msg.Header.SetSubject("hi")
//	msg.Header.SetFrom(header.NewMailbox("Me", "me@example.com"))
//	_, err := msg.WriteTo(os.Stdout)
//
// Message.WriteTo synthesizes Date and Message-ID headers from env if the
// caller hasn't already set them, and adds MIME-Version when the message is
// multipart or its body is not 7bit, so the only headers a
// caller must supply by hand are the ones that are meaningfully theirs to
// choose.
package message
