// Package opengl provides an OpenGL 4.1 backend for the datagrid
// package: a renderer that draws finalized DrawLists and a Window that
// adapts GLFW to the grid's Platform and input contracts.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/datagrid"
)

// Renderer draws datagrid DrawLists using OpenGL.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The grid only ever textures with the alpha-only font atlas: the R
// channel carries coverage, the vertex color carries RGB.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a renderer for a viewport of the given pixel size.
// Requires a current OpenGL 4.1 context.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (uint32)
	stride := int32(unsafe.Sizeof(datagrid.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(datagrid.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(datagrid.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.fontTex = createFontTexture()

	return r, nil
}

// FontTextureID returns the OpenGL texture ID of the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Resize updates the viewport size used for the projection and scissor
// conversion. Call it with framebuffer (pixel) dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws a finalized DrawList. GL state touched here is saved and
// restored so the grid can share a context with other rendering.
func (r *Renderer) Render(dl *datagrid.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(datagrid.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Clip rect is in grid coordinates (Y down); scissor wants GL
		// coordinates (Y up).
		clipX := int32(cmd.ClipRect[0])
		clipY := int32(float32(r.height) - cmd.ClipRect[3])
		clipW := int32(cmd.ClipRect[2] - cmd.ClipRect[0])
		clipH := int32(cmd.ClipRect[3] - cmd.ClipRect[1])
		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}
		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setCap(gl.BLEND, blendEnabled)
	setCap(gl.DEPTH_TEST, depthEnabled)
	setCap(gl.CULL_FACE, cullEnabled)
	setCap(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	return nil
}

func setCap(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	compile := func(kind uint32, source, name string) (uint32, error) {
		shader := gl.CreateShader(kind)
		csource, free := gl.Strs(source)
		gl.ShaderSource(shader, 1, csource, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
			log := make([]byte, logLength+1)
			gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
			return 0, fmt.Errorf("%s shader compilation failed: %s", name, string(log))
		}
		return shader, nil
	}

	vertexShader, err := compile(gl.VERTEX_SHADER, vertexSource, "vertex")
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compile(gl.FRAGMENT_SHADER, fragmentSource, "fragment")
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
