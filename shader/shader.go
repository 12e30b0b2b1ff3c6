package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inUV;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

void main() {
    fragPos = vec3(model * vec4(inPosition, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragUV = inUV * UVscale;
    gl_Position = projection * view * model * vec4(inPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
#define TOTAL_LIGHTS 4

struct Material {
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform vec4 lightColor;
uniform sampler2D objectTexture;
uniform vec3 viewPos;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

vec3 shade(LightSource light, vec3 normal, vec3 viewDir, vec3 baseColor) {
    vec3 lightDir = normalize(light.position - fragPos);

    vec3 ambient = light.ambientColor * material.ambientColor * baseColor;

    float diff = max(dot(normal, lightDir), 0.0);
    vec3 diffuse = light.diffuseColor * diff * material.diffuseColor * baseColor;

    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess * light.focalStrength);
    vec3 specular = light.specularColor * light.specularIntensity * spec * material.specularColor;

    return ambient + diffuse + specular;
}

void main() {
    vec4 baseColor = bUseTexture ? texture(objectTexture, fragUV) : objectColor;

    if (!bUseLighting) {
        outColor = baseColor;
        return;
    }

    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPos);

    vec3 result = vec3(0.0);
    for (int i = 0; i < TOTAL_LIGHTS; i++) {
        result += shade(lightSources[i], normal, viewDir, baseColor.rgb);
    }
    outColor = vec4(result, baseColor.a);
}
`

// Program is a compiled and linked shading stage with name-addressed uniform
// setters. Uniform locations are resolved lazily and cached; names the linker
// optimized away resolve to -1 and writes to them are silently dropped by the
// driver, mirroring how unresolved uniforms degrade rather than fail.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// NewProgram compiles and links the scene's vertex and fragment shaders.
func NewProgram() (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
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
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return &Program{
		handle:    program,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}

// Activate makes this program the current shading stage.
func (p *Program) Activate() {
	gl.UseProgram(p.handle)
}

// Delete frees the GPU program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *Program) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2f(p.location(name), value.X(), value.Y())
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(p.location(name), value.X(), value.Y(), value.Z())
}

func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(p.location(name), value.X(), value.Y(), value.Z(), value.W())
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &value[0])
}

func (p *Program) SetSampler2D(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}
